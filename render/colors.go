package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
)

// Palette holds every color the renderers draw with
type Palette struct {
	Background tcell.Color
	Ship       tcell.Color
	Alien      tcell.Color
	Bullet     tcell.Color
	Star       tcell.Color
	StarDim    tcell.Color
	Button     tcell.Color
	ButtonText tcell.Color
	StatusText tcell.Color
	StatusBg   tcell.Color
}

// starDimming is how far dim stars are blended toward the background
const starDimming = 0.55

// NewPalette resolves the configured and built-in hex colors
func NewPalette(settings engine.Settings) (Palette, error) {
	var firstErr error
	parse := func(hex string) colorful.Color {
		c, err := colorful.Hex(hex)
		if err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "palette color %q", hex)
		}
		return c
	}

	bg := parse(settings.BgColor)
	star := parse(constants.StarColor)
	p := Palette{
		Background: ToTcell(bg),
		Ship:       ToTcell(parse(constants.ShipColor)),
		Alien:      ToTcell(parse(constants.AlienColor)),
		Bullet:     ToTcell(parse(settings.BulletColor)),
		Star:       ToTcell(star),
		StarDim:    ToTcell(star.BlendLab(bg, starDimming).Clamped()),
		Button:     ToTcell(parse(constants.PlayButtonColor)),
		ButtonText: ToTcell(parse(constants.PlayTextColor)),
	}
	if firstErr != nil {
		return Palette{}, firstErr
	}

	// Status bar inverts the play field: light bar, background-colored text
	p.StatusBg = p.Star
	p.StatusText = p.Background
	return p, nil
}

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
