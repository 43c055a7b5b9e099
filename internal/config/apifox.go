package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// ApifoxConfigFile is the credentials file kept at the workspace root
const ApifoxConfigFile = ".spring-api-helper.json"

// DefaultProjectName is used when the stored record has no project name
const DefaultProjectName = "Spring API Documentation"

// Environment variables that override the stored record
const (
	EnvAPIKey      = "APIFOX_API_KEY"
	EnvProjectID   = "APIFOX_PROJECT_ID"
	EnvProjectName = "APIFOX_PROJECT_NAME"
)

var (
	// ErrConfigMissing is returned when no Apifox credentials are stored
	ErrConfigMissing = errors.New("apifox configuration not found")

	// ErrConfigInvalid is returned when the stored credentials cannot be used
	ErrConfigInvalid = errors.New("apifox configuration invalid")
)

// ApifoxConfig is the persisted upload target
type ApifoxConfig struct {
	APIKey      string `json:"apiKey"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
}

// Validate checks that the record can be used for an upload
func (a *ApifoxConfig) Validate() error {
	if strings.TrimSpace(a.APIKey) == "" {
		return fmt.Errorf("%w: apiKey is empty", ErrConfigInvalid)
	}
	if strings.TrimSpace(a.ProjectID) == "" {
		return fmt.Errorf("%w: projectId is empty", ErrConfigInvalid)
	}
	return nil
}

// LoadApifox reads the credentials record at path and applies overrides from
// envPath (a .env file, optional) and the process environment.
// A missing record with no overrides yields ErrConfigMissing; unreadable JSON
// or empty required fields yield ErrConfigInvalid.
func LoadApifox(fsys afero.Fs, path, envPath string) (*ApifoxConfig, error) {
	cfg := &ApifoxConfig{}
	found := false

	data, err := afero.ReadFile(fsys, path)
	switch {
	case err == nil:
		found = true
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	overridden, err := applyEnv(fsys, cfg, envPath)
	if err != nil {
		return nil, err
	}

	if !found && !overridden {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}

	if cfg.ProjectName == "" {
		cfg.ProjectName = DefaultProjectName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveApifox writes the credentials record as indented JSON
func SaveApifox(fsys afero.Fs, path string, cfg *ApifoxConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode apifox config: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0600); err != nil {
		return fmt.Errorf("failed to save apifox config: %w", err)
	}
	return nil
}

// applyEnv overlays APIFOX_* values from the .env file, then from the process
// environment. It reports whether any value was applied.
func applyEnv(fsys afero.Fs, cfg *ApifoxConfig, envPath string) (bool, error) {
	values := map[string]string{}

	if envPath != "" {
		f, err := fsys.Open(envPath)
		switch {
		case err == nil:
			parsed, perr := godotenv.Parse(f)
			f.Close()
			if perr != nil {
				return false, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, envPath, perr)
			}
			values = parsed
		case errors.Is(err, os.ErrNotExist):
		default:
			return false, fmt.Errorf("failed to open %s: %w", envPath, err)
		}
	}

	for _, key := range []string{EnvAPIKey, EnvProjectID, EnvProjectName} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			values[key] = v
		}
	}

	applied := false
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(values[key]); v != "" {
			*dst = v
			applied = true
		}
	}
	set(&cfg.APIKey, EnvAPIKey)
	set(&cfg.ProjectID, EnvProjectID)
	set(&cfg.ProjectName, EnvProjectName)

	return applied, nil
}
