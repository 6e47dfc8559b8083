package instruction

import "fmt"

// Kind is the resolved operation of a decoded instruction word.
// The set of kinds is closed, Unknown is the only catch-all.
type Kind uint8

// Instruction kinds, named after their effect.
const (
	Unknown Kind = iota

	ClearScreen    // 00E0
	Return         // 00EE
	Jump           // 1NNN
	Call           // 2NNN
	SkipIfEqualNN  // 3XNN
	SkipIfNotEqNN  // 4XNN
	SkipIfEqualY   // 5XY0
	SetRegister    // 6XNN
	AddToRegister  // 7XNN
	Set            // 8XY0
	Or             // 8XY1
	And            // 8XY2
	Xor            // 8XY3
	Add            // 8XY4
	SubtractXY     // 8XY5
	ShiftRight     // 8XY6
	SubtractYX     // 8XY7
	ShiftLeft      // 8XYE
	SkipIfNotEqY   // 9XY0
	SetIndex       // ANNN
	JumpWithOffset // BNNN
	Random         // CXNN
	Draw           // DXYN
	SkipIfKey      // EX9E
	SkipIfNotKey   // EXA1
	ReadDelayTimer // FX07
	WaitForKey     // FX0A
	SetDelayTimer  // FX15
	SetSoundTimer  // FX18
	AddToIndex     // FX1E
	FontCharacter  // FX29
	BCD            // FX33
	Store          // FX55
	Load           // FX65

	kindCount
)

var kindNames = [kindCount]string{
	Unknown:        "unknown",
	ClearScreen:    "clear-screen",
	Return:         "return",
	Jump:           "jump",
	Call:           "call",
	SkipIfEqualNN:  "skip-if-x-eq-nn",
	SkipIfNotEqNN:  "skip-if-x-ne-nn",
	SkipIfEqualY:   "skip-if-x-eq-y",
	SetRegister:    "set-reg",
	AddToRegister:  "add-to-reg",
	Set:            "set",
	Or:             "or",
	And:            "and",
	Xor:            "xor",
	Add:            "add",
	SubtractXY:     "subtract-x-y",
	ShiftRight:     "shift-right",
	SubtractYX:     "subtract-y-x",
	ShiftLeft:      "shift-left",
	SkipIfNotEqY:   "skip-if-x-ne-y",
	SetIndex:       "set-index",
	JumpWithOffset: "jump-with-offset",
	Random:         "random",
	Draw:           "draw",
	SkipIfKey:      "skip-if-key-pressed",
	SkipIfNotKey:   "skip-if-key-not-pressed",
	ReadDelayTimer: "read-delay-timer",
	WaitForKey:     "wait-for-keypress",
	SetDelayTimer:  "set-delay-timer",
	SetSoundTimer:  "set-sound-timer",
	AddToIndex:     "add-to-index",
	FontCharacter:  "get-font-char",
	BCD:            "bcd-conversion",
	Store:          "store",
	Load:           "load",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds returns all known kinds, excluding Unknown.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Unknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
