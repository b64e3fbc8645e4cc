package domain

import (
	"fmt"
	"time"
)

type IntervalUnit string

const (
	IntervalMinutes IntervalUnit = "minutes"
	IntervalHours   IntervalUnit = "hours"
	IntervalDays    IntervalUnit = "days"
)

// NotifierConfig is the single process-wide notification settings document.
type NotifierConfig struct {
	BotToken      string       `json:"bot_token"`
	ChatID        string       `json:"chat_id"`
	Enabled       bool         `json:"enabled"`
	IntervalValue int          `json:"interval_value"`
	IntervalUnit  IntervalUnit `json:"interval_unit"`
}

// DefaultNotifierConfig matches the settings a fresh install starts with.
func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		Enabled:       false,
		IntervalValue: 24,
		IntervalUnit:  IntervalHours,
	}
}

func (c NotifierConfig) Validate() error {
	if c.IntervalValue < 1 {
		return fmt.Errorf("%w: interval_value must be positive", ErrInvalidInput)
	}
	switch c.IntervalUnit {
	case IntervalMinutes, IntervalHours, IntervalDays:
		return nil
	default:
		return fmt.Errorf("%w: unknown interval_unit %q", ErrInvalidInput, c.IntervalUnit)
	}
}

// HasCredentials reports whether the delivery transport can be called at all.
func (c NotifierConfig) HasCredentials() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// Interval converts the value/unit pair into a duration.
func (c NotifierConfig) Interval() (time.Duration, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	switch c.IntervalUnit {
	case IntervalMinutes:
		return time.Duration(c.IntervalValue) * time.Minute, nil
	case IntervalHours:
		return time.Duration(c.IntervalValue) * time.Hour, nil
	default:
		return time.Duration(c.IntervalValue) * 24 * time.Hour, nil
	}
}
