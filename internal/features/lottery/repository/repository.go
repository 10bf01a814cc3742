package repository

import (
	"context"
	"time"

	"lottery-data-backend/internal/features/lottery/models"
)

// StateRepository maps the lottery state to and from its durable form. It is
// pure read/write plumbing; preconditions and the restore ordering live in
// the service layer.
type StateRepository interface {
	// Load returns the decoded state, or the default state when no data
	// file exists yet. It never creates the file.
	Load(ctx context.Context) (*models.State, error)

	// Save encodes the full state and replaces the data file atomically.
	Save(ctx context.Context, state *models.State) error

	// Exists reports whether the live data file is present.
	Exists() bool

	// DataPath is the absolute path of the live data file.
	DataPath() string

	// ReadData returns the raw bytes of the live data file.
	ReadData(ctx context.Context) ([]byte, error)

	// ReadCandidate returns the raw bytes of a restore candidate.
	ReadCandidate(ctx context.Context, path string) ([]byte, error)

	// WriteBackup writes raw bytes to a fresh timestamped backup file next
	// to the data file and returns its path.
	WriteBackup(ctx context.Context, data []byte, at time.Time) (string, error)

	// OverwriteData replaces the live data file with raw bytes.
	OverwriteData(ctx context.Context, data []byte) error

	// Decode parses raw bytes into a state, reporting malformed content.
	Decode(data []byte) (*models.State, error)
}
