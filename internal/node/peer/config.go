package peer

import (
	"errors"
	"time"
)

const (
	defaultMaxNodes             = 8
	defaultRequestTimeout       = 5 * time.Second
	defaultMaxAttempts          = 16
	defaultRetryInitialInterval = 250 * time.Millisecond
	defaultRetryMaxInterval     = 10 * time.Second
	defaultMaintenanceInterval  = 10 * time.Second
	defaultIdleThreshold        = 30 * time.Second
	defaultHealthyThreshold     = 50
	defaultPingConcurrency      = 5
)

// Config tunes the Manager.
type Config struct {
	MaxNodes             int
	RequestTimeout       time.Duration
	MaxAttempts          int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	MaintenanceInterval  time.Duration
	IdleThreshold        time.Duration
	// HealthyThreshold is the score above which a node counts towards MaxNodes when deciding whether
	// to connect to a discovered address.
	HealthyThreshold int
	PingConcurrency  int
}

func DefaultConfig() Config {
	return Config{
		MaxNodes:             defaultMaxNodes,
		RequestTimeout:       defaultRequestTimeout,
		MaxAttempts:          defaultMaxAttempts,
		RetryInitialInterval: defaultRetryInitialInterval,
		RetryMaxInterval:     defaultRetryMaxInterval,
		MaintenanceInterval:  defaultMaintenanceInterval,
		IdleThreshold:        defaultIdleThreshold,
		HealthyThreshold:     defaultHealthyThreshold,
		PingConcurrency:      defaultPingConcurrency,
	}
}

func (c Config) validate() error {
	switch {
	case c.MaxNodes <= 0:
		return errors.New("max nodes must be positive")
	case c.RequestTimeout <= 0:
		return errors.New("request timeout must be positive")
	case c.MaxAttempts <= 0:
		return errors.New("max attempts must be positive")
	case c.RetryInitialInterval < 0 || c.RetryMaxInterval < c.RetryInitialInterval:
		return errors.New("retry intervals are inconsistent")
	case c.MaintenanceInterval <= 0:
		return errors.New("maintenance interval must be positive")
	case c.IdleThreshold <= 0:
		return errors.New("idle threshold must be positive")
	case c.PingConcurrency <= 0:
		return errors.New("ping concurrency must be positive")
	}
	return nil
}
