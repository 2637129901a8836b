package input

import "time"

// KeyTracker infers key release for terminals that only report presses
// A held key auto-repeats; once no repeat arrives within the hold timeout the key counts as released
type KeyTracker struct {
	timeout  time.Duration
	lastSeen map[Key]time.Time
}

// NewKeyTracker creates a tracker with the given hold timeout
func NewKeyTracker(timeout time.Duration) *KeyTracker {
	return &KeyTracker{
		timeout:  timeout,
		lastSeen: make(map[Key]time.Time, 2),
	}
}

// Press records a press or repeat of key
func (kt *KeyTracker) Press(key Key, now time.Time) {
	kt.lastSeen[key] = now
}

// Release forgets key, returning whether it was held
func (kt *KeyTracker) Release(key Key) bool {
	_, held := kt.lastSeen[key]
	delete(kt.lastSeen, key)
	return held
}

// Held reports whether key is currently considered held
func (kt *KeyTracker) Held(key Key) bool {
	_, held := kt.lastSeen[key]
	return held
}

// Expire releases every key silent for longer than the timeout and returns them
func (kt *KeyTracker) Expire(now time.Time) []Key {
	var released []Key
	for key, seen := range kt.lastSeen {
		if now.Sub(seen) > kt.timeout {
			released = append(released, key)
			delete(kt.lastSeen, key)
		}
	}
	return released
}
