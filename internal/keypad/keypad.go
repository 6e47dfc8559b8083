// Package keypad implements the 16 key hexadecimal keypad state.
package keypad

import "sync"

// Keys is the number of keys on the keypad.
const Keys = 16

// State is a snapshot of the pressed state of all keys,
// indexed by canonical key index 0-F.
type State [Keys]bool

// Pressed returns whether the key with the given index is pressed.
// Indexes outside of 0-F are never pressed.
func (s State) Pressed(index byte) bool {
	slot, ok := Slot(index)
	if !ok {
		return false
	}
	return s[slot]
}

// First returns the lowest index of all pressed keys.
func (s State) First() (byte, bool) {
	for i, pressed := range s {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}

// slots maps a register value to its keypad slot. The canonical index
// space is used directly as the slot layout.
var slots = [Keys]int{0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF}

// Slot maps a register value to the keypad slot it addresses.
func Slot(value byte) (int, bool) {
	if int(value) >= Keys {
		return 0, false
	}
	return slots[value], true
}

// Keypad holds the key state written by the host and read by the
// interpreter. It is safe for concurrent use.
type Keypad struct {
	mu    sync.Mutex
	state State
}

// New returns a keypad with no keys pressed.
func New() *Keypad {
	return &Keypad{}
}

// Press marks the key as pressed. Indexes outside of 0-F are ignored.
func (k *Keypad) Press(index byte) {
	k.setKey(index, true)
}

// Release marks the key as released. Indexes outside of 0-F are ignored.
func (k *Keypad) Release(index byte) {
	k.setKey(index, false)
}

// Set replaces the state of all keys.
func (k *Keypad) Set(state State) {
	k.mu.Lock()
	k.state = state
	k.mu.Unlock()
}

// Snapshot returns the current state of all keys.
func (k *Keypad) Snapshot() State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

func (k *Keypad) setKey(index byte, pressed bool) {
	slot, ok := Slot(index)
	if !ok {
		return
	}
	k.mu.Lock()
	k.state[slot] = pressed
	k.mu.Unlock()
}
