package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the docsift config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.docsift/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".docsift")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// Set stores a configuration value and persists it immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()

	return s.Save()
}

// Save persists the current configuration to storage.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from storage.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	data := make(map[string]any)
	if err := toml.Unmarshal(raw, &data); err != nil {
		return err
	}

	s.data = data
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
