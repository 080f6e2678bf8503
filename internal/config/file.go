package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape. Pointer fields distinguish "absent"
// from the zero value so only keys present in the file override defaults.
type fileConfig struct {
	Input        *string `yaml:"input"`
	Output       *string `yaml:"output"`
	Stitcher     *string `yaml:"stitcher"`
	Ext          *string `yaml:"ext"`
	Order        *string `yaml:"order"`
	DryRun       *bool   `yaml:"dry_run"`
	SkipExisting *bool   `yaml:"skip_existing"`
	Verbose      *bool   `yaml:"verbose"`
	Color        *string `yaml:"color"`
	Log          *string `yaml:"log"`
}

// LoadFile reads the YAML config at path and overlays every key it sets onto
// cfg. Unknown keys are rejected so typos don't silently fall back to defaults.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return decodeFile(data, path, cfg)
}

func decodeFile(data []byte, path string, cfg *Config) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: nothing to overlay.
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Input != nil {
		cfg.InputPattern = *fc.Input
	}
	if fc.Output != nil {
		cfg.OutputDir = *fc.Output
	}
	if fc.Stitcher != nil {
		cfg.Stitcher = *fc.Stitcher
	}
	if fc.Ext != nil {
		cfg.OutputExt = *fc.Ext
	}
	if fc.Order != nil {
		v := orderValue{&cfg.Order}
		if err := v.Set(*fc.Order); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.SkipExisting != nil {
		cfg.SkipExisting = *fc.SkipExisting
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		v := colorModeValue{&cfg.ColorMode}
		if err := v.Set(*fc.Color); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if fc.Log != nil {
		cfg.LogFile = *fc.Log
	}
	return nil
}
