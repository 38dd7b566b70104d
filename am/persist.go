package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(fs afero.Fs, configPath string) error {
	// Check if file exists before backing up
	if exists, err := afero.Exists(fs, configPath); err != nil || !exists {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	// Delete oldest backup if exists
	if err := fs.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Log deletion failures (but don't fail config save)
		logger.Warnw("Failed to delete old config backup", logger.FieldFile, back3, logger.FieldError, err)
	}

	if exists, _ := afero.Exists(fs, back2); exists {
		if err := fs.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if exists, _ := afero.Exists(fs, back1); exists {
		if err := fs.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	// Copy current to .back1
	content, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := afero.WriteFile(fs, back1, content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// WriteConfig writes cfg as TOML to configPath, backing up any existing file
func WriteConfig(fs afero.Fs, configPath string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return saveConfigFile(fs, configPath, data)
}

// InitProjectConfig writes a hsuno.toml with every default into dir.
// An existing file is left alone unless force is set.
func InitProjectConfig(fs afero.Fs, dir string, force bool) (string, error) {
	configPath := filepath.Join(dir, ProjectConfigName)
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", configPath)
	}
	if exists && !force {
		return "", errors.WithHint(
			errors.Newf("%s already exists", configPath),
			"pass --force to overwrite it; the current file is kept as .back1")
	}
	if err := WriteConfig(fs, configPath, Defaults()); err != nil {
		return "", err
	}
	return configPath, nil
}

// SetValue updates one dotted key (e.g. generate.workers) in the TOML file at configPath.
// The file is created when missing. The value must keep the config valid.
func SetValue(fs afero.Fs, configPath, key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.Newf("key %q must be section.name, e.g. generate.workers", key)
	}

	config := make(map[string]interface{})
	if data, err := afero.ReadFile(fs, configPath); err == nil {
		if err := toml.Unmarshal(data, &config); err != nil {
			return errors.Wrapf(err, "failed to parse %s", configPath)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to read %s", configPath)
	}

	// Get or create the section
	section, ok := config[parts[0]].(map[string]interface{})
	if !ok {
		section = make(map[string]interface{})
	}
	section[parts[1]] = value
	config[parts[0]] = section

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Round-trip through the typed config so a bad value never lands on disk
	candidate := Defaults()
	if err := toml.Unmarshal(data, candidate); err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}
	if err := candidate.Validate(); err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	return saveConfigFile(fs, configPath, data)
}

// saveConfigFile writes data with a backup of the previous content
func saveConfigFile(fs afero.Fs, configPath string, data []byte) error {
	if err := createBackup(fs, configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	if err := fs.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(configPath))
	}

	if err := afero.WriteFile(fs, configPath, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}
	return nil
}
