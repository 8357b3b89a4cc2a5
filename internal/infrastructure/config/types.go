package config

import "time"

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screenWidth" env:"SCREEN_WIDTH"`
	ScreenHeight  int     `yaml:"screenHeight" env:"SCREEN_HEIGHT"`
	Scale         int     `yaml:"scale" env:"SCALE"`
	Framerate     int     `yaml:"framerate" env:"FRAMERATE"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit" env:"PIXELS_PER_UNIT"` // world meters to screen pixels
}

// TickInterval is the fixed simulation step for the configured framerate.
func (d DisplayConfig) TickInterval() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

// Tuning is the root config for tuning.yaml. The state machine keeps a
// pointer to it, so a hot reload applies to every timer scheduled afterwards.
type Tuning struct {
	Movement MovementConfig `yaml:"movement" envPrefix:"MOVEMENT_"`
	Spin     SpinConfig     `yaml:"spin" envPrefix:"SPIN_"`
	Combo    ComboConfig    `yaml:"combo" envPrefix:"COMBO_"`
	Combat   CombatConfig   `yaml:"combat" envPrefix:"COMBAT_"`
	Feedback FeedbackConfig `yaml:"feedback" envPrefix:"FEEDBACK_"`
}

// ControlMode selects how movement axes map onto the character.
type ControlMode string

const (
	// ControlDirect moves in the direction of the stick relative to the screen.
	ControlDirect ControlMode = "direct"
	// ControlTank turns with the horizontal axis and drives along the heading.
	ControlTank ControlMode = "tank"
)

type MovementConfig struct {
	Mode               ControlMode   `yaml:"mode" env:"MODE"`
	MoveSpeed          float64       `yaml:"moveSpeed" env:"MOVE_SPEED"`      // m/s
	TurnSpeed          float64       `yaml:"turnSpeed" env:"TURN_SPEED"`      // deg/s, tank mode
	JumpImpulse        float64       `yaml:"jumpImpulse" env:"JUMP_IMPULSE"`  // m/s upward
	MinJumpInterval    time.Duration `yaml:"minJumpInterval" env:"MIN_JUMP_INTERVAL"`
	Gravity            float64       `yaml:"gravity" env:"GRAVITY"`
	WalkScale          float64       `yaml:"walkScale" env:"WALK_SCALE"`
	BackwardsWalkScale float64       `yaml:"backwardsWalkScale" env:"BACKWARDS_WALK_SCALE"`
	BackwardRunScale   float64       `yaml:"backwardRunScale" env:"BACKWARD_RUN_SCALE"`
	Interpolation      float64       `yaml:"interpolation" env:"INTERPOLATION"` // axis smoothing rate per second
}

type SpinConfig struct {
	AngularRate float64       `yaml:"angularRate" env:"ANGULAR_RATE"` // deg/s
	Duration    time.Duration `yaml:"duration" env:"DURATION"`
	Cooldown    time.Duration `yaml:"cooldown" env:"COOLDOWN"`
}

type ComboConfig struct {
	Window               time.Duration `yaml:"window" env:"WINDOW"`
	MinHitDuration       time.Duration `yaml:"minHitDuration" env:"MIN_HIT_DURATION"`
	HitboxPreDelay       time.Duration `yaml:"hitboxPreDelay" env:"HITBOX_PRE_DELAY"`
	HitboxActiveDuration time.Duration `yaml:"hitboxActiveDuration" env:"HITBOX_ACTIVE_DURATION"`
}

type CombatConfig struct {
	HitboxReach      float64 `yaml:"hitboxReach" env:"HITBOX_REACH"`   // distance ahead of the character
	HitboxRadius     float64 `yaml:"hitboxRadius" env:"HITBOX_RADIUS"` // meters
	KnockbackImpulse float64 `yaml:"knockbackImpulse" env:"KNOCKBACK_IMPULSE"`
	EndWindowOnHit   bool    `yaml:"endWindowOnHit" env:"END_WINDOW_ON_HIT"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `yaml:"screenShake" envPrefix:"SCREEN_SHAKE_"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `yaml:"enabled" env:"ENABLED"`
	Intensity float64 `yaml:"intensity" env:"INTENSITY"` // pixels
	Decay     float64 `yaml:"decay" env:"DECAY"`         // per tick multiplier
}
