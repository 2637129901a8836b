package engine

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
)

// ErrInvalidSettings is the cause of every validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the immutable-after-init configuration bundle
// Speeds are logical units per nominal tick (constants.GameUpdateInterval)
type Settings struct {
	// Screen
	ScreenWidth  int
	ScreenHeight int
	BgColor      string // #rrggbb

	// Ship
	ShipSpeed  float64
	ShipLimit  int
	ShipWidth  int
	ShipHeight int

	// Bullets
	BulletSpeed    float64
	BulletWidth    int
	BulletHeight   int
	BulletColor    string // #rrggbb
	BulletsAllowed int

	// Stars
	StarDensity float64
	StarWidth   int
	StarHeight  int

	// Aliens
	AlienSpeed     float64
	AlienWidth     int
	AlienHeight    int
	FleetDropSpeed int
	// FleetDirection is the initial heading of every new game
	FleetDirection components.Direction
}

// DefaultSettings returns the stock game configuration
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:  constants.DefaultScreenWidth,
		ScreenHeight: constants.DefaultScreenHeight,
		BgColor:      constants.DefaultBgColor,

		ShipSpeed:  constants.DefaultShipSpeed,
		ShipLimit:  constants.DefaultShipLimit,
		ShipWidth:  constants.ShipWidth,
		ShipHeight: constants.ShipHeight,

		BulletSpeed:    constants.DefaultBulletSpeed,
		BulletWidth:    constants.DefaultBulletWidth,
		BulletHeight:   constants.DefaultBulletHeight,
		BulletColor:    constants.DefaultBulletColor,
		BulletsAllowed: constants.DefaultBulletAllowed,

		StarDensity: constants.DefaultStarDensity,
		StarWidth:   constants.StarWidth,
		StarHeight:  constants.StarHeight,

		AlienSpeed:     constants.DefaultAlienSpeed,
		AlienWidth:     constants.AlienWidth,
		AlienHeight:    constants.AlienHeight,
		FleetDropSpeed: constants.DefaultFleetDropSpeed,
		FleetDirection: constants.DefaultFleetDirection,
	}
}

// StarGrid returns the starfield row and column counts for the current screen and density
func (s Settings) StarGrid() (rows, columns int) {
	factor := constants.StarGridFactor * (1 + constants.StarDensityStep*s.StarDensity)
	rows = int(factor * float64(s.ScreenHeight))
	columns = int(factor * float64(s.ScreenWidth))
	return rows, columns
}

// Validate rejects configurations that would fault layout math or break entity invariants
// Every returned error has ErrInvalidSettings as its cause
func (s Settings) Validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return invalid("screen must be positive, got %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.StarDensity < 0 {
		return invalid("star density must not be negative, got %v", s.StarDensity)
	}
	if rows, columns := s.StarGrid(); rows <= 0 || columns <= 0 {
		return invalid("star density %v yields an empty %dx%d grid on %dx%d screen",
			s.StarDensity, rows, columns, s.ScreenWidth, s.ScreenHeight)
	}

	dims := []struct {
		name string
		w, h int
	}{
		{"ship", s.ShipWidth, s.ShipHeight},
		{"bullet", s.BulletWidth, s.BulletHeight},
		{"star", s.StarWidth, s.StarHeight},
		{"alien", s.AlienWidth, s.AlienHeight},
	}
	for _, d := range dims {
		if d.w <= 0 || d.h <= 0 {
			return invalid("%s size must be positive, got %dx%d", d.name, d.w, d.h)
		}
	}
	if s.ShipWidth > s.ScreenWidth || s.ShipHeight > s.ScreenHeight {
		return invalid("ship %dx%d does not fit screen %dx%d", s.ShipWidth, s.ShipHeight, s.ScreenWidth, s.ScreenHeight)
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"ship", s.ShipSpeed},
		{"bullet", s.BulletSpeed},
		{"alien", s.AlienSpeed},
	}
	for _, sp := range speeds {
		if sp.value <= 0 {
			return invalid("%s speed must be positive, got %v", sp.name, sp.value)
		}
	}

	if s.ShipLimit < 1 {
		return invalid("ship limit must be at least 1, got %d", s.ShipLimit)
	}
	if s.BulletsAllowed < 1 {
		return invalid("bullets allowed must be at least 1, got %d", s.BulletsAllowed)
	}
	if s.FleetDropSpeed < 0 {
		return invalid("fleet drop speed must not be negative, got %d", s.FleetDropSpeed)
	}
	if !s.FleetDirection.Valid() {
		return invalid("fleet direction must be 1 or -1, got %d", s.FleetDirection)
	}

	for name, hex := range map[string]string{"background": s.BgColor, "bullet": s.BulletColor} {
		if _, err := colorful.Hex(hex); err != nil {
			return errors.Wrapf(ErrInvalidSettings, "%s color %q: %v", name, hex, err)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSettings, format, args...)
}
