// Package git provides repository handle resolution, configuration lookup,
// HEAD resolution and index mutation for gitstage.
// This file reads and writes repository configuration through git.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/gitstage/internal/ctxutil"
	gserrors "github.com/mrz1836/gitstage/internal/errors"
	"github.com/mrz1836/gitstage/internal/logging"
)

// GetConfigString looks up key in the repository's layered configuration
// (local, global, system, as git resolves them).
//
// ok is false when the key is absent, present without a value, or when the
// lookup itself fails (malformed file, I/O error). Callers cannot tell these
// apart; their fallback is the same for all of them. err is non-nil only
// when the handle or key is unusable, or ctx is canceled.
func GetConfigString(ctx context.Context, repo *Repo, key string) (value string, ok bool, err error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", false, err
	}
	if key == "" {
		return "", false, fmt.Errorf("config key: %w", gserrors.ErrEmptyValue)
	}
	workDir, err := repo.WorkDir()
	if err != nil {
		return "", false, err
	}

	logger := zerolog.Ctx(ctx)

	out, err := runGit(ctx, workDir, "config", "--get", key)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", false, err
		}
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 && cmdErr.Stderr == "" {
			logger.Debug().Str("key", key).Msg("config key not set")
		} else {
			logger.Debug().Str("key", key).Err(err).Msg("config lookup failed, treating key as unset")
		}
		return "", false, nil
	}

	// git terminates the value with a single newline; anything else is the value.
	value = strings.TrimSuffix(out, "\n")
	if value == "" {
		logger.Debug().Str("key", key).Msg("config key present without value")
		return "", false, nil
	}

	logger.Debug().
		Str("key", key).
		Str("value", logging.SafeValue(key, value)).
		Msg("config key resolved")
	return value, true, nil
}

// GetConfigStringByPath opens the repository at path and looks up key.
// Only a failure to open the repository is returned as an error.
func GetConfigStringByPath(ctx context.Context, path, key string) (string, bool, error) {
	repo, err := Open(ctx, path)
	if err != nil {
		return "", false, err
	}
	return GetConfigString(ctx, repo, key)
}

// SetConfigString writes key=value to the repository's local configuration.
func SetConfigString(ctx context.Context, repo *Repo, key, value string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("config key: %w", gserrors.ErrEmptyValue)
	}
	workDir, err := repo.WorkDir()
	if err != nil {
		return err
	}

	if _, err := runGit(ctx, workDir, "config", "--local", key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("key", key).
		Str("value", logging.SafeValue(key, value)).
		Msg("config key written")
	return nil
}
