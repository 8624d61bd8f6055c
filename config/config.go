package config

import (
	"fmt"
	"runtime"

	coretypes "github.com/projecteru2/core/types"
)

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds global netid configuration.
type Config struct {
	// PoolSize is the goroutine pool size for batch generation.
	// Env: NETID_POOL_SIZE. Defaults to runtime.NumCPU() if zero.
	PoolSize int `json:"pool_size" mapstructure:"pool_size"`
	// Output selects how results are printed: text, json or yaml.
	// Env: NETID_OUTPUT. Default: text.
	Output string `json:"output" mapstructure:"output"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log *coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with every field populated.
func DefaultConfig() *Config {
	return &Config{
		PoolSize: runtime.NumCPU(),
		Output:   OutputText,
		Log: &coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}

// Validate normalizes zero values and rejects unknown output formats.
func (c *Config) Validate() error {
	if c.PoolSize <= 0 {
		c.PoolSize = runtime.NumCPU()
	}
	if c.Log == nil {
		c.Log = &coretypes.ServerLogConfig{Level: "info"}
	}
	switch c.Output {
	case "":
		c.Output = OutputText
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
