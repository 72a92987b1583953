// Package keys tracks per-key press state across input events.
package keys

// Key identifies a physical key. Values are SDL scancodes.
type Key uint32

type keyState struct {
	current  bool
	previous bool
}

// Map records the current and previous state of every key that has seen
// an event. A key with no events reads as released in both slots.
type Map struct {
	keys map[Key]keyState
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{keys: make(map[Key]keyState)}
}

// Set records a key event, shifting the current state into previous.
func (k *Map) Set(key Key, down bool) {
	st := k.keys[key]
	k.keys[key] = keyState{current: down, previous: st.current}
}

// Down reports whether the key is currently held.
func (k *Map) Down(key Key) bool {
	return k.keys[key].current
}

// JustPressed reports a press edge: down now, up before.
func (k *Map) JustPressed(key Key) bool {
	st := k.keys[key]
	return st.current && !st.previous
}

// Consume marks the key as released in both slots so an edge fires once.
func (k *Map) Consume(key Key) {
	k.keys[key] = keyState{}
}
