package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/typst-templatr/typst-templatr/internal/branding"
)

const (
	fileType        = "yaml"
	keyTemplatePath = "templates_path"
)

var (
	ErrNoHomeDirectory = errors.New("home directory could not be determined")
	ErrNotFound        = errors.New("config file does not exist")
	ErrUnreadable      = errors.New("config file could not be read")
	ErrMalformed       = errors.New("config file is malformed")
	ErrWriteFailure    = errors.New("config file could not be written")
)

// Config is the single configuration record.
type Config struct {
	TemplatesPath string `yaml:"templates_path" mapstructure:"templates_path"`
}

// Store reads and writes the configuration file under the user's home directory.
type Store struct {
	// HomeDir resolves the user's home directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewStore returns a Store rooted at the running user's home directory.
func NewStore() *Store {
	return &Store{HomeDir: os.UserHomeDir}
}

func (s *Store) home() (string, error) {
	lookup := s.HomeDir
	if lookup == nil {
		lookup = os.UserHomeDir
	}
	home, err := lookup()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHomeDirectory, err)
	}
	if home == "" {
		return "", ErrNoHomeDirectory
	}
	return home, nil
}

// ResolvePath returns the full path to the config file (~/.typst-templatr.yaml).
func (s *Store) ResolvePath() (string, error) {
	home, err := s.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, branding.ConfigFile()), nil
}

// Load reads, validates and decodes the config file. The environment variable
// TYPST_TEMPLATR_TEMPLATES_PATH overrides the stored library path.
func (s *Store) Load() (*Config, error) {
	path, err := s.ResolvePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, result.Issues[0])
	}

	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	if err := v.BindEnv(keyTemplatePath, branding.EnvVar(keyTemplatePath)); err != nil {
		return nil, fmt.Errorf("binding %s: %w", keyTemplatePath, err)
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return &config, nil
}

// Save writes the config file, replacing any existing one. A config that Load
// would reject fails with ErrMalformed and nothing is written.
func (s *Store) Save(config *Config) error {
	path, err := s.ResolvePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: marshaling: %w", ErrWriteFailure, err)
	}

	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s", ErrMalformed, result.Issues[0])
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}

// LibraryDir returns the configured library path with a leading ~ expanded.
func (s *Store) LibraryDir(config *Config) (string, error) {
	return s.ExpandHome(config.TemplatesPath)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths are cleaned and returned unchanged.
func (s *Store) ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return filepath.Clean(path), nil
	}

	home, err := s.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
