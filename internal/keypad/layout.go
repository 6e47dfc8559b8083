package keypad

import "unicode"

// Layout maps each keypad index to the host key at the same position on
// the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var Layout = [Keys]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

// FromRune returns the keypad index for a host key of the layout.
func FromRune(r rune) (byte, bool) {
	r = unicode.ToLower(r)
	for index, key := range Layout {
		if key == r {
			return byte(index), true
		}
	}
	return 0, false
}
