package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities. It abstracts the source
// of configuration to allow for different implementations like files, environment
// variables, or remote configuration services.
type Loader interface {
	// Load retrieves and parses the configuration from the underlying source.
	// It returns the parsed configuration or an error if loading fails.
	Load(ctx context.Context) (*Config, error)
}

// NewViper returns a viper instance with the tool defaults and environment
// binding applied. Callers bind flags onto it before loading.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ViperLoader resolves configuration from a viper instance, reading the
// config file at path first when one is given.
type ViperLoader struct {
	v    *viper.Viper
	path string
}

// NewViperLoader creates a ViperLoader. An empty path skips the config file.
func NewViperLoader(v *viper.Viper, path string) *ViperLoader {
	return &ViperLoader{v: v, path: path}
}

// Load reads the config file, if any, and resolves every setting.
func (l *ViperLoader) Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.path != "" {
		l.v.SetConfigFile(l.path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	s := settings{
		Format:   l.v.GetString(KeyFormat),
		LogLevel: l.v.GetString(KeyLogLevel),
	}
	return s.resolve()
}
