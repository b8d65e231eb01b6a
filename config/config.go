package config

import "image/color"

// ArenaConfig describes the fixed battle field. Values here are defaults;
// the arena map can override spawn points and bounds.
type ArenaConfig struct {
	Ground      float64 // y of a standing fighter
	LeftLimit   float64 // fighters may not move left of this x
	RightMargin float64 // distance from the right screen edge fighters stop at
	DefeatSink  float64 // extra depth a defeated fighter sinks below Ground

	// Collision space
	CellSize int

	MapPath string // Tiled map, relative to the arena filesystem
}

// FighterConfig contains the shared combatant tuning values
type FighterConfig struct {
	Health        int
	MoveSpeed     float64
	JumpSpeed     float64 // negative impulse applied on jump
	Gravity       float64
	ThrowDuration int // frames, human thrower
	MaxShurikens  int // live projectiles per fighter

	// Collision rectangle relative to the fighter position
	HitboxOffsetX float64
	HitboxOffsetY float64
	HitboxWidth   float64
	HitboxHeight  float64

	// Hit reaction
	StunFrames int // damage states revert to Stand after this many frames

	// Defeated animation
	DefeatStepBack float64 // pixels of lateral drift per frame while collapsing

	// Sprite frame size used for placeholders and rendering
	FrameWidth  int
	FrameHeight int
}

// ShurikenConfig contains projectile configuration
type ShurikenConfig struct {
	Speed       float64
	SpinStep    float64 // degrees per update
	MinX        float64 // projectiles are discarded once x leaves [MinX, MaxX]
	MaxX        float64
	LightDamage int
	HeavyDamage int
	LightSize   float64
	HeavySize   float64

	// Spawn offsets relative to the thrower position
	OffsetRightX float64
	OffsetLeftX  float64
	OffsetY      float64
}

// AIConfig contains the AI controller's tuning
type AIConfig struct {
	ThrowDuration int
	JumpChance    float64 // per frame
	ThrowChance   float64 // per frame
	HeavyOdds     int     // 1 in HeavyOdds throws is heavy
	GuardAfterHit bool    // hold block once struck, until the next throw
	MaxBlocks     int     // consecutive blocks absorbed before the guard breaks
}

// HUDConfig contains health bar layout, mirrored for the AI side
type HUDConfig struct {
	HumanIconX, HumanIconY float64
	AIIconX, AIIconY       float64
	HumanBarX, AIBarX      float64
	BarY                   float64
	BarWidth               float64
	BarHeight              float64
	FillInsetX, FillInsetY float64
	FillHeight             float64
	IconSize               int
	DrainSeconds           float32 // duration of the displayed health drain
	BackColor              color.RGBA
	FillColor              color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	ButtonWidth  int
	ButtonHeight int
	ButtonGap    int
	MenuOptions  []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	LogoX, LogoY    float64
	MenuOptions     []string
	HelpTitle       string
	HelpLines       []string
}

// BannerConfig contains the round-over banner configuration
type BannerConfig struct {
	X, Y          float64
	Width, Height int
	SlideSeconds  float32
	OverlayColor  color.RGBA
	MenuOptions   []string
}

// WindowConfig holds window settings that the config file may change
type WindowConfig struct {
	Title      string
	Scale      float64
	Fullscreen bool
}

// AssetConfig tells the asset registry where to look on disk
type AssetConfig struct {
	Dir string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool  // Skip menu and go directly to battle
	DrawHitboxes bool  // Outline collision rectangles
	AISeed       int64 // 0 picks a time based seed
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Shuriken ShurikenConfig
var AI AIConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Banner BannerConfig
var Window WindowConfig
var Assets AssetConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	GrayOverlay  = color.RGBA{R: 128, G: 128, B: 128, A: 150}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// RightLimit is the largest x a fighter may stand at.
func (a ArenaConfig) RightLimit() float64 {
	return float64(C.Width) - a.RightMargin
}

func init() {
	C = &Config{
		Width:  1000,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		Ground:      510,
		LeftLimit:   -18,
		RightMargin: 80,
		DefeatSink:  23,
		CellSize:    16,
		MapPath:     "arena.tmx",
	}

	Fighter = FighterConfig{
		Health:         200,
		MoveSpeed:      5,
		JumpSpeed:      -15,
		Gravity:        1,
		ThrowDuration:  12, // three throw frames, four ticks each
		MaxShurikens:   6,
		HitboxOffsetX:  10,
		HitboxOffsetY:  5,
		HitboxWidth:    80,
		HitboxHeight:   85,
		StunFrames:     10,
		DefeatStepBack: 2,
		FrameWidth:     100,
		FrameHeight:    100,
	}

	Shuriken = ShurikenConfig{
		Speed:        10,
		SpinStep:     15,
		MinX:         -50,
		MaxX:         1050,
		LightDamage:  10,
		HeavyDamage:  20,
		LightSize:    24,
		HeavySize:    36,
		OffsetRightX: 60,
		OffsetLeftX:  20,
		OffsetY:      30,
	}

	AI = AIConfig{
		ThrowDuration: 30,
		JumpChance:    0.03,
		ThrowChance:   0.03,
		HeavyOdds:     10,
		GuardAfterHit: true,
		MaxBlocks:     2,
	}

	HUD = HUDConfig{
		HumanIconX:   10,
		HumanIconY:   10,
		AIIconX:      910,
		AIIconY:      10,
		HumanBarX:    87,
		AIBarX:       710,
		BarY:         38,
		BarWidth:     202,
		BarHeight:    25,
		FillInsetX:   2,
		FillInsetY:   5,
		FillHeight:   15,
		IconSize:     80,
		DrainSeconds: 0.25,
		BackColor:    Red,
		FillColor:    Green,
	}

	Pause = PauseConfig{
		OverlayColor: GrayOverlay,
		ButtonWidth:  220,
		ButtonHeight: 48,
		ButtonGap:    16,
		MenuOptions:  []string{"Resume", "Restart", "Exit", "Home"},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		LogoX:           130,
		LogoY:           80,
		MenuOptions:     []string{"Start", "Help", "Exit"},
		HelpTitle:       "Controls",
		HelpLines: []string{
			"1. Use LEFT Arrow Key to Move Left",
			"2. Use RIGHT Arrow Key to Move Right",
			"3. Use UP Arrow Key to Jump",
			"4. Press SPACE & Shift + SPACE to Throw Small & Big Shuriken",
			"5. Use DOWN Arrow Key to Block Shuriken",
			"5.1 You can Block 2 Shuriken in Row.",
			"5.2 After that you need to attack 1 Shuriken to block another Shuriken",
			"Esc or P pauses the battle",
		},
	}

	Banner = BannerConfig{
		X:            300,
		Y:            100,
		Width:        400,
		Height:       160,
		SlideSeconds: 0.5,
		OverlayColor: BlackOverlay,
		MenuOptions:  []string{"Restart", "Exit"},
	}

	Window = WindowConfig{
		Title:      "Shinobi Saga",
		Scale:      1,
		Fullscreen: false,
	}

	Assets = AssetConfig{
		Dir: "assets",
	}

	// Debug Config (defaults, can be overridden by the config file and CLI flags)
	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
		AISeed:       0,
	}
}
