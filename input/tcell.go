package input

import "github.com/gdamore/tcell/v2"

// specialKeys maps non-rune terminal keys to game keys
var specialKeys = map[tcell.Key]Key{
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyDown:   KeyStop,
	tcell.KeyEnter:  KeyPlay,
	tcell.KeyEscape: KeyQuit,
	tcell.KeyCtrlC:  KeyQuit,
}

// runeKeys maps printable keys to game keys
var runeKeys = map[rune]Key{
	' ': KeyFire,
	'q': KeyQuit,
	'Q': KeyQuit,
	'p': KeyPlay,
	'P': KeyPlay,
	'h': KeyLeft,
	'l': KeyRight,
	'j': KeyStop,
}

// CellMapper converts a terminal cell into logical play-field coordinates
type CellMapper func(col, row int) (x, y int)

// Translator converts tcell events into game input events
// Mouse presses are edge-triggered: drag and motion reports with the button held are ignored
type Translator struct {
	toLogical   CellMapper
	lastButtons tcell.ButtonMask
}

// NewTranslator creates a translator using mapper for mouse positions
func NewTranslator(mapper CellMapper) *Translator {
	return &Translator{toLogical: mapper}
}

// SetMapper replaces the cell mapper, used after a resize
func (t *Translator) SetMapper(mapper CellMapper) {
	t.toLogical = mapper
}

// Translate returns the game event for ev; Kind is EventNone for ignored events
func (t *Translator) Translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return TranslateKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0
		t.lastButtons = buttons
		if !pressed || t.toLogical == nil {
			return Event{}
		}
		col, row := ev.Position()
		x, y := t.toLogical(col, row)
		return Event{Kind: EventMouseDown, X: x, Y: y}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: EventResize, X: w, Y: h}
	}
	return Event{}
}

// TranslateKey maps a terminal key, and its rune for tcell.KeyRune, to a key-down event
func TranslateKey(k tcell.Key, r rune) Event {
	if k == tcell.KeyRune {
		if key, ok := runeKeys[r]; ok {
			return Event{Kind: EventKeyDown, Key: key}
		}
		return Event{}
	}
	if key, ok := specialKeys[k]; ok {
		return Event{Kind: EventKeyDown, Key: key}
	}
	return Event{}
}
