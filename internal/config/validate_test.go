package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitstage/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
		errMsg  string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "zero max size",
			mutate:  func(cfg *Config) { cfg.Log.MaxSizeMB = 0 },
			wantErr: errors.ErrConfigInvalidLog,
			errMsg:  "log.max_size_mb",
		},
		{
			name:    "negative backups",
			mutate:  func(cfg *Config) { cfg.Log.MaxBackups = -1 },
			wantErr: errors.ErrConfigInvalidLog,
			errMsg:  "log.max_backups",
		},
		{
			name:    "zero max age",
			mutate:  func(cfg *Config) { cfg.Log.MaxAgeDays = 0 },
			wantErr: errors.ErrConfigInvalidLog,
			errMsg:  "log.max_age_days",
		},
		{
			name:    "threshold below minimum",
			mutate:  func(cfg *Config) { cfg.Locks.StaleThreshold = 500 * time.Millisecond },
			wantErr: errors.ErrConfigInvalidLocks,
			errMsg:  "locks.stale_threshold",
		},
		{
			name:   "threshold at minimum",
			mutate: func(cfg *Config) { cfg.Locks.StaleThreshold = time.Second },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}
