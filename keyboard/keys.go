// Package keyboard reads exclusive, unbuffered keyboard input from a POSIX
// terminal and decodes it into logical key tokens, including multi-byte ANSI
// escape sequences for arrows, function keys and navigation keys.
//
// A Keyboard session owns the terminal: it switches the input device into
// cbreak mode for its lifetime and restores the saved attributes on Close.
// One session at a time; a second acquisition fails with ErrModeHeld.
//
// A Keyboard is meant for a single consumer. Calling its methods from
// multiple goroutines without external synchronization is not supported.
package keyboard

// Key identifies a logical key.
type Key int

// KeyRune marks a token carrying a literal character instead of a named key;
// the decoded scalar is in Token.Rune.
const (
	KeyRune Key = iota

	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyEnter
	KeySpace
	KeyBackspace
	KeyTab
	KeyInsert
	KeyDelete
	KeyEnd
	KeyHome

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyPageUp:    "PAGE_UP",
	KeyPageDown:  "PAGE_DOWN",
	KeyUp:        "UP",
	KeyDown:      "DOWN",
	KeyLeft:      "LEFT",
	KeyRight:     "RIGHT",
	KeyEsc:       "ESC",
	KeyEnter:     "ENTER",
	KeySpace:     "SPACE",
	KeyBackspace: "BACKSPACE",
	KeyTab:       "TAB",
	KeyInsert:    "INSERT",
	KeyDelete:    "DELETE",
	KeyEnd:       "END",
	KeyHome:      "HOME",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// String returns the logical key name (PAGE_UP, UP, F1, ...).
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "RUNE"
}

// Token is one decoded key event: either a named key (Rune is zero) or a
// literal character (Key is KeyRune and Rune holds the scalar). Tokens are
// plain values compared by equality.
type Token struct {
	Key  Key
	Rune rune
}

// String returns the key name, or the character itself for rune tokens.
func (t Token) String() string {
	if t.Key == KeyRune {
		return string(t.Rune)
	}
	return t.Key.String()
}

// Tables holds the decode lookup tables. They are built once and treated as
// read-only by the decoder; tests may supply custom tables.
type Tables struct {
	// Control maps single control bytes to named keys.
	Control map[byte]Key
	// SS3 maps the byte following ESC 'O' to named keys (F1-F4).
	SS3 map[byte]Key
	// CSILetter maps single-letter CSI terminators to named keys.
	CSILetter map[byte]Key
	// CSINumeric maps the digits before the first ';' of a '~'-terminated
	// CSI sequence to named keys.
	CSINumeric map[string]Key
}

// DefaultTables returns the standard ANSI decode tables.
func DefaultTables() Tables {
	return Tables{
		Control: map[byte]Key{
			8:   KeyBackspace,
			9:   KeyTab,
			10:  KeyEnter,
			27:  KeyEsc,
			32:  KeySpace,
			127: KeyBackspace,
		},
		SS3: map[byte]Key{
			'P': KeyF1,
			'Q': KeyF2,
			'R': KeyF3,
			'S': KeyF4,
		},
		CSILetter: map[byte]Key{
			'A': KeyUp,
			'B': KeyDown,
			'C': KeyRight,
			'D': KeyLeft,
			'F': KeyEnd,
			'H': KeyHome,
			'Z': KeyTab, // sent with SHIFT held
		},
		CSINumeric: map[string]Key{
			"1":  KeyHome,
			"2":  KeyInsert,
			"3":  KeyDelete,
			"4":  KeyEnd,
			"5":  KeyPageUp,
			"6":  KeyPageDown,
			"15": KeyF5,
			"17": KeyF6,
			"18": KeyF7,
			"19": KeyF8,
			"20": KeyF9,
			"21": KeyF10,
			"23": KeyF11,
			"24": KeyF12,
		},
	}
}
