package config

// AnimationDef describes how a state's frames advance. Rate is added to the
// fractional frame counter every update.
type AnimationDef struct {
	Frames int
	Rate   float64
}

// CharacterAnimations maps a character to its per-state animation.
// States without an entry show a single fixed image.
var CharacterAnimations = map[CharacterID]map[StateID]AnimationDef{
	Naruto: {
		Run:      {Frames: 6, Rate: 0.3},
		Jump:     {Frames: 4, Rate: 0.1},
		Throw:    {Frames: 3, Rate: 0.1},
		Defeated: {Frames: 3, Rate: 0.05},
	},
	Sasuke: {
		Run:      {Frames: 6, Rate: 0.13},
		Jump:     {Frames: 4, Rate: 0.13},
		Throw:    {Frames: 3, Rate: 0.09},
		Defeated: {Frames: 3, Rate: 0.05},
	},
}

// AnimationFor returns the animation of a character's state. ok is false for
// static states.
func AnimationFor(c CharacterID, s StateID) (AnimationDef, bool) {
	def, ok := CharacterAnimations[c][s]
	if !ok || def.Frames <= 0 {
		return AnimationDef{Frames: 1}, false
	}
	return def, true
}
