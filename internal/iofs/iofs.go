// Package iofs prepares directories and files the application needs
// before it starts working.
package iofs

import (
	"os"

	"github.com/gnames/airports/pkg/config"
	"github.com/gnames/airports/pkg/templates"
)

// EnsureDirs creates config and log directories inside homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory with its parents if it does not exist.
func EnsureDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile copies the embedded config.yaml to the config
// directory unless the file is already there.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureRegionsFile copies the embedded regions.yaml to the config
// directory unless the file is already there.
func EnsureRegionsFile(homeDir string) error {
	return ensureFile(config.RegionsFilePath(homeDir), templates.RegionsYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
