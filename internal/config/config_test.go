package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nx-sdk/nxsdk-go/pkg/common/logger"
	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

func TestViperLoader_Defaults(t *testing.T) {
	cfg, err := NewViperLoader(NewViper(), "").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nxtypes.RecordTypeText, cfg.Format)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
}

func TestViperLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nxtypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\nlog_level: debug\n"), 0o600))

	cfg, err := NewViperLoader(NewViper(), path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nxtypes.RecordTypeXML, cfg.Format)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
}

func TestViperLoader_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nxtypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))
	t.Setenv("NXTYPES_FORMAT", "R_JSON")

	cfg, err := NewViperLoader(NewViper(), path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nxtypes.RecordTypeJSON, cfg.Format)
}

func TestViperLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown format", key: KeyFormat, value: "yaml", wantErr: nxtypes.ErrUnknownName},
		{name: "sentinel format", key: KeyFormat, value: "R_MAX_TYPE", wantErr: nxtypes.ErrUnknownName},
		{name: "unknown log level", key: KeyLogLevel, value: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.value)

			_, err := NewViperLoader(v, "").Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestViperLoader_MissingFile(t *testing.T) {
	_, err := NewViperLoader(NewViper(), filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
