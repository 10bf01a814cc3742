// Package file persists the lottery state as a single JSON document in a
// per-user directory, with timestamped backup copies alongside it.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	apperrors "lottery-data-backend/internal/common/errors"
	"lottery-data-backend/internal/features/lottery/models"
	"lottery-data-backend/internal/features/lottery/repository"
)

const (
	dataFileName     = "data.json"
	backupNameFormat = "data_backup_20060102_150405.json"
	dirPerm          = 0o755
	filePerm         = 0o644
)

// Repository stores the state under a single root directory. The directory
// is injected so tests can point it at a temporary location.
type Repository struct {
	dir string
}

var _ repository.StateRepository = (*Repository)(nil)

// New creates the repository rooted at dir, creating the directory if
// needed. An empty dir resolves to <home>/Documents/lottery-game.
func New(dir string) (*Repository, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeEnvironment, "cannot determine user home directory")
		}
		dir = filepath.Join(home, "Documents", "lottery-game")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeEnvironment, "cannot create storage directory %s", dir)
	}
	return &Repository{dir: dir}, nil
}

func (r *Repository) DataPath() string {
	return filepath.Join(r.dir, dataFileName)
}

// BackupPath names a backup file with one-second resolution. Two backups
// within the same second share a path and the last write wins.
func (r *Repository) BackupPath(at time.Time) string {
	return filepath.Join(r.dir, at.UTC().Format(backupNameFormat))
}

func (r *Repository) Exists() bool {
	_, err := os.Stat(r.DataPath())
	return err == nil
}

func (r *Repository) Load(ctx context.Context) (*models.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "load cancelled")
	}

	data, err := os.ReadFile(r.DataPath())
	if errors.Is(err, os.ErrNotExist) {
		// A fresh installation is not an error.
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "cannot read data file")
	}
	return r.Decode(data)
}

func (r *Repository) Save(ctx context.Context, state *models.State) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "save cancelled")
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeEncode, "cannot encode state")
	}
	return r.OverwriteData(ctx, data)
}

func (r *Repository) ReadData(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "read cancelled")
	}

	data, err := os.ReadFile(r.DataPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.New(apperrors.ErrCodeNoDataFile, "no data file to back up")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "cannot read data file")
	}
	return data, nil
}

func (r *Repository) ReadCandidate(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "read cancelled")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.Newf(apperrors.ErrCodeBackupNotFound, "backup file %s does not exist", path)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "cannot read backup file")
	}
	return data, nil
}

func (r *Repository) WriteBackup(ctx context.Context, data []byte, at time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "backup cancelled")
	}

	path := r.BackupPath(at)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "cannot write backup file")
	}
	return path, nil
}

func (r *Repository) OverwriteData(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "write cancelled")
	}

	if err := writeFileAtomic(r.DataPath(), data, filePerm); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageIO, "cannot write data file")
	}
	return nil
}

// Decode parses raw bytes into a state. Syntax errors, type mismatches
// (negative counters, numbers where strings belong) and unknown prize
// colors all count as malformed.
func (r *Repository) Decode(data []byte) (*models.State, error) {
	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedData, "data format error, file may be corrupted")
	}
	return &state, nil
}
