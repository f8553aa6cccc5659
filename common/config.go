package common

import (
	"github.com/agglayer/aggsandbox/config/types"
)

// RetryConfig is the configurable form of RetryPolicy
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts, including the first one
	MaxAttempts int `mapstructure:"MaxAttempts"`
	// InitialInterval is the wait after the first failed attempt
	InitialInterval types.Duration `mapstructure:"InitialInterval"`
	// MaxInterval caps the wait between attempts
	MaxInterval types.Duration `mapstructure:"MaxInterval"`
	// Multiplier grows the wait after each failed attempt
	Multiplier float64 `mapstructure:"Multiplier"`
}

// Policy returns the policy, zero fields take the DefaultRetryPolicy value
func (c RetryConfig) Policy() RetryPolicy {
	p := DefaultRetryPolicy()
	if c.MaxAttempts > 0 {
		p.MaxAttempts = c.MaxAttempts
	}
	if c.InitialInterval.Duration > 0 {
		p.InitialInterval = c.InitialInterval.Duration
	}
	if c.MaxInterval.Duration > 0 {
		p.MaxInterval = c.MaxInterval.Duration
	}
	if c.Multiplier > 0 {
		p.Multiplier = c.Multiplier
	}

	return p
}
