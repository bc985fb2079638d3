// Package config resolves where the exporter's files live under a root
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	overrideFile     = "ionexport.yaml"
	defaultCredsFile = "creds.json"
	defaultDownloads = "downloads"
	defaultMeterFile = "meters.csv"
)

// Paths locates everything the exporter touches under the root directory.
type Paths struct {
	Credentials string
	Downloads   string
	MeterList   string
}

type overrides struct {
	CredsFile    string `yaml:"creds_file"`
	DownloadsDir string `yaml:"downloads_dir"`
	MeterFile    string `yaml:"meter_file"`
}

// Resolve returns the configured paths for root. An ionexport.yaml inside
// root may override the default file names; its absence is not an error.
func Resolve(root string) (Paths, error) {
	var ov overrides
	data, err := os.ReadFile(filepath.Join(root, overrideFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &ov); err != nil {
			return Paths{}, fmt.Errorf("config: %s: %w", overrideFile, err)
		}
	case !os.IsNotExist(err):
		return Paths{}, fmt.Errorf("config: %w", err)
	}
	if ov.CredsFile == "" {
		ov.CredsFile = defaultCredsFile
	}
	if ov.DownloadsDir == "" {
		ov.DownloadsDir = defaultDownloads
	}
	if ov.MeterFile == "" {
		ov.MeterFile = defaultMeterFile
	}
	return Paths{
		Credentials: filepath.Join(root, ov.CredsFile),
		Downloads:   filepath.Join(root, ov.DownloadsDir),
		MeterList:   filepath.Join(root, ov.MeterFile),
	}, nil
}

// ExistsDir reports whether path exists and is a directory.
func ExistsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
