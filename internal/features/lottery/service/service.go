package service

import (
	"context"
	"sync"
	"time"

	"lottery-data-backend/internal/common/logger"
	"lottery-data-backend/internal/features/lottery/models"
	"lottery-data-backend/internal/features/lottery/repository"
)

type lotteryService struct {
	repo repository.StateRepository

	// All five operations share one data file, so they are serialized
	// behind a single mutex. Other processes writing the same file are
	// still unguarded.
	mu sync.Mutex
}

func NewLotteryService(repo repository.StateRepository) LotteryService {
	return &lotteryService{repo: repo}
}

func (s *lotteryService) SaveLotteryData(ctx context.Context, state *models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, state); err != nil {
		return err
	}
	logger.Info().Str("path", s.repo.DataPath()).Msg("Lottery data saved")
	return nil
}

func (s *lotteryService) LoadLotteryData(ctx context.Context) (*models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", s.repo.DataPath()).Msg("Lottery data loaded")
	return state, nil
}

func (s *lotteryService) BackupData(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ReadData fails with NO_DATA_FILE before anything is written.
	data, err := s.repo.ReadData(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.repo.WriteBackup(ctx, data, time.Now())
	if err != nil {
		return "", err
	}
	logger.Info().Str("path", path).Msg("Lottery data backed up")
	return path, nil
}

// RestoreFromBackup replaces the live data file with the candidate's bytes.
// The candidate is decoded first and the live file is only touched after the
// decode succeeds, so a corrupt candidate can never clobber good data. The
// logical rules from models.Validate are deliberately not applied here; any
// structurally parseable backup is accepted.
func (s *lotteryService) RestoreFromBackup(ctx context.Context, backupPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.repo.ReadCandidate(ctx, backupPath)
	if err != nil {
		return err
	}
	if _, err := s.repo.Decode(data); err != nil {
		logger.Warn().Str("path", backupPath).Err(err).Msg("Restore rejected: candidate does not decode")
		return err
	}

	if err := s.repo.OverwriteData(ctx, data); err != nil {
		return err
	}
	logger.Info().Str("path", backupPath).Msg("Lottery data restored from backup")
	return nil
}

// ValidateData reports overall data health as a single boolean. An absent
// file counts as valid (a default state would be created on load); a file
// that cannot be read or decoded counts as invalid rather than erroring.
func (s *lotteryService) ValidateData(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.Exists() {
		return true, nil
	}

	data, err := s.repo.ReadData(ctx)
	if err != nil {
		return false, nil
	}
	state, err := s.repo.Decode(data)
	if err != nil {
		return false, nil
	}
	return models.Validate(state), nil
}
