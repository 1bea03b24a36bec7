package storage

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// GDataStore keeps profile records in the per-user application data
// directory managed by gdata.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGData opens the gdata storage for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// LoadItem returns the stored value for key, or nil if there is none.
func (s *GDataStore) LoadItem(key string) ([]byte, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// SaveItem stores value under key.
func (s *GDataStore) SaveItem(key string, value []byte) error {
	if err := s.m.SaveItem(key, value); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// DeleteItem clears key by saving an empty value.
func (s *GDataStore) DeleteItem(key string) error {
	return s.SaveItem(key, nil)
}

// Close is a no-op; gdata holds no open handles.
func (s *GDataStore) Close() error {
	return nil
}
