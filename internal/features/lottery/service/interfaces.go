package service

import (
	"context"

	"lottery-data-backend/internal/features/lottery/models"
)

// LotteryService defines the persistence and integrity operations exposed to
// the host shell.
type LotteryService interface {
	SaveLotteryData(ctx context.Context, state *models.State) error
	LoadLotteryData(ctx context.Context) (*models.State, error)
	BackupData(ctx context.Context) (string, error)
	RestoreFromBackup(ctx context.Context, backupPath string) error
	ValidateData(ctx context.Context) (bool, error)
}
