package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# apicat configuration
# Every key can be overridden with an APICAT_ environment variable,
# e.g. APICAT_CATALOG=./apis or APICAT_LOG_LEVEL=debug.
`

const envTemplate = `# Variables referenced from catalog base URLs as {{env:NAME}}.
# PRODUCT_API_HOST=https://api.example.com
`

// InitResult lists what Init wrote.
type InitResult struct {
	Dir     string
	Created []string
}

// Init creates the settings folder under root with a config file written
// from cfg and an env template. Existing files are left alone unless force
// is set, in which case only the config file is rewritten.
func Init(root string, cfg Config, force bool) (InitResult, error) {
	if err := cfg.Validate(); err != nil {
		return InitResult{}, err
	}
	dir := filepath.Join(root, FolderName)
	res := InitResult{Dir: dir}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, fmt.Errorf("failed to create %s folder: %w", FolderName, err)
	}

	configPath := filepath.Join(dir, FileName)
	if force || !exists(configPath) {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return res, fmt.Errorf("failed to marshal config: %w", err)
		}
		if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0644); err != nil {
			return res, fmt.Errorf("failed to write config file: %w", err)
		}
		res.Created = append(res.Created, configPath)
	}

	envPath := filepath.Join(dir, ".env")
	if !exists(envPath) {
		if err := os.WriteFile(envPath, []byte(envTemplate), 0644); err != nil {
			return res, fmt.Errorf("failed to write env template: %w", err)
		}
		res.Created = append(res.Created, envPath)
	}

	return res, nil
}

// EnvFiles returns the dotenv files apicat loads, in load order. Files that
// do not exist are skipped.
func EnvFiles(root string) []string {
	var files []string
	for _, p := range []string{filepath.Join(root, ".env"), filepath.Join(root, FolderName, ".env")} {
		if exists(p) {
			files = append(files, p)
		}
	}
	return files
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
