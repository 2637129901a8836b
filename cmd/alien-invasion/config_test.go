package main

import (
	"io"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/engine"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	settings, err := opts.settings()
	if err != nil {
		t.Fatalf("Default options should be valid: %v", err)
	}
	if settings != engine.DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", settings)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{"-width", "900", "-height", "600", "-lives", "5", "-bullets", "1", "-density", "0", "-seed", "99", "-bg", "#000000"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	settings, err := opts.settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.ScreenWidth != 900 || settings.ScreenHeight != 600 {
		t.Errorf("Screen = %dx%d, want 900x600", settings.ScreenWidth, settings.ScreenHeight)
	}
	if settings.ShipLimit != 5 || settings.BulletsAllowed != 1 || settings.StarDensity != 0 {
		t.Errorf("Overrides not applied: %+v", settings)
	}
	if opts.randSeed() != 99 {
		t.Errorf("Seed = %d, want 99", opts.randSeed())
	}
}

func TestParseFlagsRejects(t *testing.T) {
	if _, err := parseFlags([]string{"-nope"}, io.Discard); err == nil {
		t.Error("Expected error for unknown flag")
	}
	if _, err := parseFlags([]string{"extra"}, io.Discard); err == nil {
		t.Error("Expected error for positional argument")
	}

	opts, err := parseFlags([]string{"-lives", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	_, err = opts.settings()
	if errors.Cause(err) != engine.ErrInvalidSettings {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}
