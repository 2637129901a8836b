package engine

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected default settings to validate, got %v", err)
	}
	if s.ScreenWidth != 1500 || s.ScreenHeight != 800 {
		t.Errorf("Expected 1500x800 screen, got %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.BulletsAllowed != 3 {
		t.Errorf("Expected 3 bullets allowed, got %d", s.BulletsAllowed)
	}
}

func TestStarGrid(t *testing.T) {
	s := DefaultSettings()
	rows, columns := s.StarGrid()
	// 0.01 * 1.1 * 800 = 8.8, 0.01 * 1.1 * 1500 = 16.5
	if rows != 8 || columns != 16 {
		t.Errorf("Expected 8x16 grid, got %dx%d", rows, columns)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"Zero width", func(s *Settings) { s.ScreenWidth = 0 }},
		{"Negative height", func(s *Settings) { s.ScreenHeight = -1 }},
		{"Empty star grid", func(s *Settings) { s.ScreenWidth, s.ScreenHeight = 50, 50 }},
		{"Negative density", func(s *Settings) { s.StarDensity = -20 }},
		{"Zero alien size", func(s *Settings) { s.AlienWidth = 0 }},
		{"Zero bullet height", func(s *Settings) { s.BulletHeight = 0 }},
		{"Ship wider than screen", func(s *Settings) { s.ShipWidth = 2000 }},
		{"Zero ship speed", func(s *Settings) { s.ShipSpeed = 0 }},
		{"Negative alien speed", func(s *Settings) { s.AlienSpeed = -1 }},
		{"No ships", func(s *Settings) { s.ShipLimit = 0 }},
		{"No bullets", func(s *Settings) { s.BulletsAllowed = 0 }},
		{"Negative drop", func(s *Settings) { s.FleetDropSpeed = -5 }},
		{"Bad direction", func(s *Settings) { s.FleetDirection = 0 }},
		{"Bad background", func(s *Settings) { s.BgColor = "navy" }},
		{"Bad bullet color", func(s *Settings) { s.BulletColor = "#12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if errors.Cause(err) != ErrInvalidSettings {
				t.Errorf("Expected cause ErrInvalidSettings, got %v", errors.Cause(err))
			}
		})
	}
}

func TestValidateAllowsEmptyFleetGeometry(t *testing.T) {
	// Too short for a single alien row but still a valid configuration
	s := DefaultSettings()
	s.ScreenHeight = 200
	if err := s.Validate(); err != nil {
		t.Errorf("Expected short screen to validate, got %v", err)
	}
}
