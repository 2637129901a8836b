package input

// EventKind discriminates abstract input events
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit           // Window/terminal closed
	EventKeyDown
	EventKeyUp
	EventMouseDown // Primary button press at a logical position
	EventResize    // Terminal resized to Width x Height cells
)

// Key is a game-level key, independent of the terminal key that produced it
type Key uint8

const (
	KeyNone  Key = iota
	KeyLeft      // Continuous movement while held
	KeyRight     // Continuous movement while held
	KeyStop      // Explicit release of both movement keys
	KeyFire      // Edge-triggered on key down
	KeyPlay      // Keyboard equivalent of clicking the play button
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyStop:  "stop",
	KeyFire:  "fire",
	KeyPlay:  "play",
	KeyQuit:  "quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Event is one input occurrence consumed by Handler
type Event struct {
	Kind EventKind
	Key  Key

	// MouseDown: logical coordinates. Resize: terminal cells
	X, Y int
}
