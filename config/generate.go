package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Generate scans a folder tree for result sets and builds a default
// config entry for each. A result set is any folder holding a
// grids_info.json; the folder name becomes the entry identifier.
func Generate(root string) (*DataConfig, error) {
	var cfg DataConfig
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "grids_info.json" {
			return nil
		}
		folder := filepath.Dir(path)
		cfg.Data = append(cfg.Data, InputFile{
			Identifier: filepath.Base(folder),
			ObjectType: "grid",
			Path:       folder,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config: could not scan %s: %s", root, err.Error())
	}
	if len(cfg.Data) == 0 {
		return nil, fmt.Errorf("config: no grids_info.json found under %s", root)
	}
	return &cfg, nil
}

// Write a config as pretty printed JSON.
func Write(cfg *DataConfig, path string) error {
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0644)
}
