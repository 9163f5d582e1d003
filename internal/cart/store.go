package cart

import (
	"encoding/json"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SnapshotStore persists the cart item list under a single durable key.
// The full list is rewritten on every mutation, last writer wins.
type SnapshotStore interface {
	Save(items []Item) error
	Load() ([]Item, error)
}

type fileSnapshotStore struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewSnapshotStore creates a snapshot store backed by the given filesystem
func NewSnapshotStore(fs afero.Fs, path string, logger *zap.Logger) *fileSnapshotStore {
	return &fileSnapshotStore{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

func (s *fileSnapshotStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		s.logger.Error("Failed to persist cart snapshot", zap.Error(err))
		return err
	}

	return nil
}

func (s *fileSnapshotStore) Load() ([]Item, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil || !exists {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	return items, nil
}
