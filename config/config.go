package config

import "time"

const (
	DefaultInterval        = time.Second
	DefaultSummarySchedule = "@every 1m"
)

type Config struct {
	Seed            uint64 `yaml:"seed,omitempty"`
	Interval        string `yaml:"interval,omitempty"`
	MaxSpins        uint64 `yaml:"spins,omitempty"`
	SummarySchedule string `yaml:"summary,omitempty"`
	SessionName     string `yaml:"session,omitempty"`
	Chart           bool   `yaml:"chart,omitempty"`
}

// SpinInterval parses the configured interval, falling back to the default
// when it is absent or malformed.
func (c *Config) SpinInterval() time.Duration {
	if c.Interval == "" {
		return DefaultInterval
	}
	if interval, err := time.ParseDuration(c.Interval); err == nil && interval > 0 {
		return interval
	}
	return DefaultInterval
}

func (c *Config) Summary() string {
	if c.SummarySchedule == "" {
		return DefaultSummarySchedule
	}
	return c.SummarySchedule
}
