// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all configurable game parameters. Values are pixels and
// pixels-per-tick unless noted.
type Config struct {
	// Server
	Addr string `json:"addr" toml:"addr"` // Listen address for the game server

	// Timing
	TickRate int `json:"tickRate" toml:"tick_rate"` // Simulation ticks per second

	// Field
	FieldWidth  float64 `json:"fieldWidth" toml:"field_width"`
	FieldHeight float64 `json:"fieldHeight" toml:"field_height"`

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight float64 `json:"paddleHeight" toml:"paddle_height"`
	PaddleOffset float64 `json:"paddleOffset" toml:"paddle_offset"` // Gap between field edge and paddle face
	PlayerSpeed  float64 `json:"playerSpeed" toml:"player_speed"`   // Displacement per held-key tick

	// AI opponent
	AIMaxSpeed float64 `json:"aiMaxSpeed" toml:"ai_max_speed"` // Tracking speed cap
	AIDeadZone float64 `json:"aiDeadZone" toml:"ai_dead_zone"` // Offset below which the AI holds still

	// Ball
	BallRadius         float64 `json:"ballRadius" toml:"ball_radius"`
	BallSpeed          float64 `json:"ballSpeed" toml:"ball_speed"`                    // Serve speed
	BallSpeedIncrement float64 `json:"ballSpeedIncrement" toml:"ball_speed_increment"` // Added per paddle hit
	BallMaxSpeed       float64 `json:"ballMaxSpeed" toml:"ball_max_speed"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Server
		Addr: ":3001",

		// Timing
		TickRate: 60,

		// Field
		FieldWidth:  800,
		FieldHeight: 500,

		// Paddles
		PaddleWidth:  12,
		PaddleHeight: 100,
		PaddleOffset: 20,
		PlayerSpeed:  7,

		// AI opponent
		AIMaxSpeed: 5,
		AIDeadZone: 4,

		// Ball
		BallRadius:         8,
		BallSpeed:          5,
		BallSpeedIncrement: 0.5,
		BallMaxSpeed:       14,
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path or a
// missing file yields the defaults; a malformed or invalid file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first nonsensical parameter combination it finds.
func (c Config) Validate() error {
	if c.TickRate < 1 {
		return errors.New("tick_rate must be at least 1")
	}
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return errors.New("field dimensions must be positive")
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return errors.New("paddle dimensions must be positive")
	}
	if c.PaddleHeight > c.FieldHeight {
		return errors.New("paddle_height cannot exceed field_height")
	}
	if c.PaddleOffset < 0 || c.PaddleOffset+c.PaddleWidth >= c.FieldWidth/2 {
		return errors.New("paddles must sit inside their half of the field")
	}
	if c.PlayerSpeed <= 0 {
		return errors.New("player_speed must be positive")
	}
	if c.AIMaxSpeed <= 0 {
		return errors.New("ai_max_speed must be positive")
	}
	if c.AIDeadZone < 0 {
		return errors.New("ai_dead_zone cannot be negative")
	}
	if c.BallRadius <= 0 {
		return errors.New("ball_radius must be positive")
	}
	if c.BallSpeed <= 0 {
		return errors.New("ball_speed must be positive")
	}
	if c.BallSpeedIncrement < 0 {
		return errors.New("ball_speed_increment cannot be negative")
	}
	if c.BallMaxSpeed < c.BallSpeed {
		return errors.New("ball_max_speed cannot be below ball_speed")
	}
	return nil
}

// TickPeriod converts the tick rate into the duration between simulation steps.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
