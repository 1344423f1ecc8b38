// Package config provides YAML-based configuration loading for the game,
// the replay store and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all settings for t2048.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"` // 2..6
}

// RulesConfig selects the end-of-round policy.
type RulesConfig struct {
	Policy string `yaml:"policy"` // "reach" or "overflow"
}

// TimingConfig defines the tick loop and notice timing.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`       // Ticks per second
	NotifyDelayMS int `yaml:"notify_delay_ms"` // Delay before the end-of-round notice
}

// StorageConfig locates the replay database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// VariantID maps the policy to the game variant that plays it.
func (r RulesConfig) VariantID() string {
	if r.Policy == "overflow" {
		return "overflow"
	}
	return "classic"
}

// Board size limits, mirrored from the game so config has no game import.
const (
	minBoardSize = 2
	maxBoardSize = 6
)

var knownPolicies = map[string]bool{
	"reach":    true,
	"overflow": true,
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Board.Size < minBoardSize || c.Board.Size > maxBoardSize {
		return fmt.Errorf("%w: board.size %d not in [%d, %d]", ErrInvalid, c.Board.Size, minBoardSize, maxBoardSize)
	}
	if !knownPolicies[c.Rules.Policy] {
		return fmt.Errorf("%w: rules.policy %q", ErrInvalid, c.Rules.Policy)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: timing.tick_rate must be positive", ErrInvalid)
	}
	if c.Timing.NotifyDelayMS < 0 {
		return fmt.Errorf("%w: timing.notify_delay_ms must not be negative", ErrInvalid)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}
