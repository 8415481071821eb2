// Package ui defines types for describing keyboard input.
package ui

import (
	"fmt"
	"strings"
	"unicode"
)

// Key represents a single keyboard input, typically assembled from an escape
// sequence.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	// Shift is the shift modifier. It is only applied to special keys (e.g.
	// Shift-F1). For instance 'A' and '@', which are typically entered with
	// the shift key pressed, are not considered to be shift-modified.
	Shift Mod = 1 << iota
	// Alt is the alt modifier, traditionally known as the meta modifier.
	Alt
	Ctrl
)

// Special negative runes to represent function keys, used in the Rune field
// of the Key struct.
const (
	F1 rune = -iota - 1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Right
	Left

	Home
	Insert
	Delete
	End
	PageUp
	PageDown

	// Some function key names are just aliases for their ASCII representation.

	Tab       = '\t'
	Enter     = '\n'
	Backspace = 0x7f
)

var functionKeyNames = [...]string{
	"(Invalid)",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Up", "Down", "Right", "Left",
	"Home", "Insert", "Delete", "End", "PageUp", "PageDown",
}

var keyNames = map[rune]string{
	Tab: "Tab", Enter: "Enter", Backspace: "Backspace",
}

func (k Key) String() (s string) {
	if k.Mod&Ctrl != 0 {
		s += "Ctrl-"
	}
	if k.Mod&Alt != 0 {
		s += "Alt-"
	}
	if k.Mod&Shift != 0 {
		s += "Shift-"
	}
	if k.Rune > 0 {
		if name, ok := keyNames[k.Rune]; ok {
			s += name
		} else {
			s += string(k.Rune)
		}
	} else {
		i := int(-k.Rune)
		if i >= len(functionKeyNames) {
			s += fmt.Sprintf("(bad function key %d)", k.Rune)
		} else {
			s += functionKeyNames[i]
		}
	}
	return s
}

// modifierByName maps a name to a modifier. The name is always turned to
// lower case before looking up, so that C, c, CTRL, Ctrl and ctrl all
// represent the Ctrl modifier.
var modifierByName = map[string]Mod{
	"s": Shift, "shift": Shift,
	"a": Alt, "alt": Alt,
	"m": Alt, "meta": Alt,
	"c": Ctrl, "ctrl": Ctrl,
}

// ParseKey parses a key written in the syntax
//
//	Key = { Mod ( '+' | '-' ) } BareKey
//
// where BareKey is either a single rune or one of the function key names
// like "F1" and "Up".
func ParseKey(s string) (Key, error) {
	var k Key
	// Parse modifiers.
	for {
		i := strings.IndexAny(s, "+-")
		// A separator at the end of the string is part of the bare key, as in
		// "Ctrl--".
		if i == -1 || i == len(s)-1 {
			break
		}
		modname := strings.ToLower(s[:i])
		mod, ok := modifierByName[modname]
		if !ok {
			return Key{}, fmt.Errorf("bad modifier: %q", modname)
		}
		k.Mod |= mod
		s = s[i+1:]
	}

	if len(s) == 1 {
		k.Rune = rune(s[0])
		if k.Mod&Ctrl != 0 {
			// Ctrl-modified keys are case-insensitive.
			k.Rune = unicode.ToUpper(k.Rune)
			if k.Mod == Ctrl {
				// Normalize Ctrl-I to Tab and Ctrl-J to Enter, which are the
				// forms the terminal actually delivers.
				switch k.Rune {
				case 'I':
					return K(Tab), nil
				case 'J':
					return K(Enter), nil
				}
			}
		}
		return k, nil
	}

	for r, name := range keyNames {
		if s == name {
			k.Rune = r
			return k, nil
		}
	}

	for i, name := range functionKeyNames[1:] {
		if s == name {
			k.Rune = rune(-i - 1)
			return k, nil
		}
	}

	return Key{}, fmt.Errorf("bad key: %q", s)
}
