package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/model"
)

// FileStore persists the deal collection as a single JSON array on disk.
//
// Every mutation reads the full collection, applies the change and atomically
// replaces the file (write to a temp file in the same directory, then rename).
// A process-local mutex serializes writers inside one process; concurrent
// writers in separate processes race and the last completed rewrite wins.
// That is an accepted property of a single-operator admin console, not
// something this store tries to lock around.
type FileStore struct {
	path     string
	seedPath string
	log      *logger.Logger

	mu sync.Mutex
}

// NewFileStore creates a file-backed store at path. When the file is missing
// and seedPath is non-empty, reads fall back to the bundled seed dataset so
// the public site never renders an empty homepage on a fresh deploy.
func NewFileStore(path, seedPath string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, seedPath: seedPath, log: log}
}

// ReadAll implements Store. A missing or corrupt file reads as an empty
// collection rather than failing the caller.
func (s *FileStore) ReadAll(ctx context.Context) ([]model.Deal, error) {
	return s.readAll()
}

func (s *FileStore) readAll() ([]model.Deal, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.readSeed(), nil
		}
		return nil, fmt.Errorf("failed to read deals file: %w", err)
	}
	var deals []model.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		s.log.Warn("deals file is corrupt, treating as empty", "path", s.path, "error", err)
		return []model.Deal{}, nil
	}
	return deals, nil
}

func (s *FileStore) readSeed() []model.Deal {
	if s.seedPath == "" {
		return []model.Deal{}
	}
	raw, err := os.ReadFile(s.seedPath)
	if err != nil {
		return []model.Deal{}
	}
	var deals []model.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		s.log.Warn("seed file is corrupt, ignoring", "path", s.seedPath, "error", err)
		return []model.Deal{}
	}
	s.log.Info("deals file missing, serving bundled seed dataset", "path", s.seedPath, "count", len(deals))
	return deals
}

// GetByID implements Store.
func (s *FileStore) GetByID(ctx context.Context, id string) (*model.Deal, error) {
	deals, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range deals {
		if deals[i].ID == id {
			return &deals[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create implements Store.
func (s *FileStore) Create(ctx context.Context, deal model.Deal) (*model.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.readAll()
	if err != nil {
		return nil, err
	}
	applyCreateDefaults(&deal)
	for i := range deals {
		if deals[i].ID == deal.ID {
			return nil, ErrExists
		}
	}
	deals = append(deals, deal)
	if err := s.writeAll(deals); err != nil {
		return nil, err
	}
	return &deal, nil
}

// Update implements Store.
func (s *FileStore) Update(ctx context.Context, id string, patch model.DealPatch) (*model.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range deals {
		if deals[i].ID != id {
			continue
		}
		patch.Apply(&deals[i])
		deals[i].UpdatedAt = Now()
		if err := s.writeAll(deals); err != nil {
			return nil, err
		}
		return &deals[i], nil
	}
	return nil, ErrNotFound
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.readAll()
	if err != nil {
		return err
	}
	kept := deals[:0]
	for i := range deals {
		if deals[i].ID != id {
			kept = append(kept, deals[i])
		}
	}
	if len(kept) == len(deals) {
		return ErrNotFound
	}
	return s.writeAll(kept)
}

func (s *FileStore) writeAll(deals []model.Deal) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".deals-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	raw, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode deals: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write deals file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace deals file: %w", err)
	}
	return nil
}
