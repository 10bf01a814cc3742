package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lottery-data-backend/internal/common/errors"
	"lottery-data-backend/internal/features/lottery/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(t.TempDir())
	require.NoError(t, err)
	return repo
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "lottery-game")
	repo, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "data.json"), repo.DataPath())
}

func TestLoad_AbsentFileReturnsDefault(t *testing.T) {
	repo := newTestRepo(t)

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, models.Validate(state))
	assert.Len(t, state.AvailablePrizes, 6)

	// Loading must not create the file.
	assert.False(t, repo.Exists())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	state := models.DefaultState()
	state.CurrentCycle.Results = []models.DrawResult{
		{PrizeID: "prize_yellow_2", Timestamp: 1700000000000, CycleID: state.CurrentCycle.ID, DrawNumber: 1},
	}
	state.CurrentCycle.RemainingDraws = models.RemainingDraws{Red: 2, Yellow: 1, Blue: 2}

	require.NoError(t, repo.Save(ctx, state))
	assert.True(t, repo.Exists())

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSave_ReplacesPriorContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := models.DefaultState()
	require.NoError(t, repo.Save(ctx, first))

	second := models.DefaultState()
	second.Config.AnimationDuration = 500
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(500), loaded.Config.AnimationDuration)
	assert.Equal(t, second.CurrentCycle.ID, loaded.CurrentCycle.ID)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(repo.DataPath()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestLoad_MalformedFile(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.DataPath(), []byte("not json at all {{{"), 0o644))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeMalformedData))
}

func TestReadData_NoFile(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ReadData(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNoDataFile))
}

func TestReadCandidate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ReadCandidate(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeBackupNotFound))
}

func TestBackupPath_Naming(t *testing.T) {
	repo := newTestRepo(t)

	at := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)
	path := repo.BackupPath(at)
	assert.Equal(t, "data_backup_20260831_140509.json", filepath.Base(path))
	assert.Equal(t, filepath.Dir(repo.DataPath()), filepath.Dir(path))
}

func TestWriteBackup_SameSecondOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	first, err := repo.WriteBackup(ctx, []byte("first"), at)
	require.NoError(t, err)
	second, err := repo.WriteBackup(ctx, []byte("second"), at)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	content, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), content)
}

func TestLoad_CancelledContext(t *testing.T) {
	repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStorageIO))
}
