package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{Size: 4},
		Rules: RulesConfig{Policy: "reach"},
		Timing: TimingConfig{
			TickRate:      60,
			NotifyDelayMS: 100,
		},
		Storage: StorageConfig{DBPath: "~/.t2048/replays.db"},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
