// Package config resolves the settings of the nxtypes command line tool from
// defaults, an optional config file, the environment, and flags.
package config

import (
	"fmt"

	"github.com/nx-sdk/nxsdk-go/pkg/common/logger"
	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

// Keys under which settings are stored. Environment variables use the same
// names upper-cased behind EnvPrefix, e.g. NXTYPES_LOG_LEVEL.
const (
	KeyFormat   = "format"
	KeyLogLevel = "log_level"

	EnvPrefix = "NXTYPES"
)

// Defaults.
const (
	DefaultFormat   = "text"
	DefaultLogLevel = "info"
)

// Config represents the resolved tool configuration.
type Config struct {
	// Format is the record format used for rendered output.
	Format nxtypes.RecordType
	// LogLevel is the minimum level written to the log.
	LogLevel logger.Level
}

// settings is the raw, string-typed form read from viper.
type settings struct {
	Format   string
	LogLevel string
}

func (s settings) resolve() (*Config, error) {
	format, err := nxtypes.ParseRecordType(s.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyFormat, err)
	}

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return &Config{Format: format, LogLevel: level}, nil
}
