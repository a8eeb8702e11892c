package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// FileStore keeps the whole snapshot in a single JSON file. Every Load reads
// the file from scratch and every Save rewrites it completely.
type FileStore struct {
	path     string
	strict   bool
	strategy retry.Strategy
	log      logger.Logger
}

func NewFileStore(path string, strict bool, log logger.Logger) *FileStore {
	return &FileStore{
		path:   path,
		strict: strict,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
		log: log,
	}
}

func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		snap := DefaultSnapshot()
		if err := s.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("seed snapshot: %w", err)
		}
		s.log.Info("snapshot file missing, seeded default",
			logger.String("path", s.path),
		)
		return snap, nil
	}
	if err != nil {
		return s.fallback(fmt.Errorf("read snapshot: %w", err))
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return s.fallback(fmt.Errorf("parse snapshot: %w", err))
	}

	return &snap, nil
}

// fallback masks a load failure with the seeded default snapshot unless the
// store runs in strict mode.
func (s *FileStore) fallback(err error) (*domain.Snapshot, error) {
	if s.strict {
		return nil, err
	}
	s.log.Error("snapshot load failed, using default",
		logger.String("path", s.path),
		logger.String("error", err.Error()),
	)
	return DefaultSnapshot(), nil
}

func (s *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = retry.Do(func() error {
		tmp := s.path + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		return os.Rename(tmp, s.path)
	}, s.strategy)
	if err != nil {
		return fmt.Errorf("write snapshot %s: %w", filepath.Base(s.path), err)
	}

	return nil
}
