package config

// StateID is a fighter's animation and behavior mode. Exactly one is active
// per fighter.
type StateID int

const (
	Stand StateID = iota
	Run
	Jump
	Throw
	Block
	SmallDamage
	BigDamage
	Defeated
	Winner
	StateCount // Must be last
)

var stateNames = [StateCount]string{
	Stand:       "stand",
	Run:         "run",
	Jump:        "jump",
	Throw:       "throw",
	Block:       "block",
	SmallDamage: "small_damage",
	BigDamage:   "big_damage",
	Defeated:    "defeated",
	Winner:      "winner",
}

// String returns the state's asset directory name.
func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}

// IsDamage reports whether s is a hit reaction.
func (s StateID) IsDamage() bool {
	return s == SmallDamage || s == BigDamage
}

// IsTerminal reports whether s ends the fighter's round. Only a restart
// leaves a terminal state.
func (s StateID) IsTerminal() bool {
	return s == Defeated || s == Winner
}

// IsStatic reports whether s shows one fixed image.
func (s StateID) IsStatic() bool {
	switch s {
	case Stand, Block, Winner, SmallDamage, BigDamage:
		return true
	case Run, Jump, Throw, Defeated:
		return false
	}
	return true
}

// Facing is the horizontal direction a fighter looks at.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 or -1.
func (f Facing) Sign() float64 {
	return float64(f)
}

// Opposite returns the other direction.
func (f Facing) Opposite() Facing {
	return -f
}

// DamageClass selects projectile size and damage.
type DamageClass int

const (
	Light DamageClass = iota
	Heavy
)

// Damage returns the health a hit of this class removes.
func (d DamageClass) Damage() int {
	if d == Heavy {
		return Shuriken.HeavyDamage
	}
	return Shuriken.LightDamage
}

// Size returns the projectile's square collision size.
func (d DamageClass) Size() float64 {
	if d == Heavy {
		return Shuriken.HeavySize
	}
	return Shuriken.LightSize
}

// ReactionState is the fighter state a landed hit of this class causes.
func (d DamageClass) ReactionState() StateID {
	if d == Heavy {
		return BigDamage
	}
	return SmallDamage
}

func (d DamageClass) String() string {
	if d == Heavy {
		return "heavy"
	}
	return "light"
}
