package keyboard

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	escByte  = 0x1b
	csiIntro = '['
	ss3Intro = 'O'
)

// UnknownSequenceError reports a recognized escape prefix whose terminator
// has no table entry. The sequence is dropped and decoding resumes at the
// next unconsumed byte; it is never re-emitted as literal characters.
type UnknownSequenceError struct {
	Seq []byte
}

func (e *UnknownSequenceError) Error() string {
	return fmt.Sprintf("keyboard: unknown escape sequence %q", e.Seq)
}

// MalformedSequenceError reports a recognized escape prefix with fewer bytes
// available than its minimum length. The undecoded tail is not retained;
// the caller may retry after the next read delivers more bytes.
type MalformedSequenceError struct {
	Seq []byte
}

func (e *MalformedSequenceError) Error() string {
	return fmt.Sprintf("keyboard: truncated escape sequence %q", e.Seq)
}

// Decode converts one run of raw terminal bytes into key tokens, in input
// order. It is pure and carries no state across calls.
//
// At each position the longest matching family wins, tried in priority
// order: SS3 (ESC 'O' x), extended CSI with a modifier digit
// (ESC '[' '1' ';' m x, the modifier is parsed and discarded), standard CSI
// (letter terminator, or digits terminated by '~'), then a direct byte
// (control table, else one UTF-8 scalar as a rune token).
//
// Unknown sequences are skipped and decoding continues; the corresponding
// errors are returned alongside whatever tokens were decoded. A truncated
// sequence stops decoding with a *MalformedSequenceError.
//
// A lone ESC at the end of the run decodes as the ESC key. An escape
// sequence split across two reads is therefore indistinguishable from a
// standalone ESC press; callers that need the distinction must ensure the
// whole sequence arrives in one run.
func Decode(data []byte, tables Tables) ([]Token, error) {
	var tokens []Token
	var errs []error

	i := 0
	for i < len(data) {
		rest := data[i:]

		if rest[0] == escByte && len(rest) >= 2 {
			switch rest[1] {
			case ss3Intro:
				if len(rest) < 3 {
					errs = append(errs, &MalformedSequenceError{Seq: copyBytes(rest)})
					return tokens, errors.Join(errs...)
				}
				if key, ok := tables.SS3[rest[2]]; ok {
					tokens = append(tokens, Token{Key: key})
				} else {
					errs = append(errs, &UnknownSequenceError{Seq: copyBytes(rest[:3])})
				}
				i += 3
				continue
			case csiIntro:
				n, tok, err := decodeCSI(rest, tables)
				if err != nil {
					var malformed *MalformedSequenceError
					if errors.As(err, &malformed) {
						errs = append(errs, err)
						return tokens, errors.Join(errs...)
					}
					errs = append(errs, err)
					i += n
					continue
				}
				tokens = append(tokens, tok)
				i += n
				continue
			}
		}

		if key, ok := tables.Control[rest[0]]; ok {
			tokens = append(tokens, Token{Key: key})
			i++
			continue
		}
		r, size := utf8.DecodeRune(rest)
		tokens = append(tokens, Token{Key: KeyRune, Rune: r})
		i += size
	}

	return tokens, errors.Join(errs...)
}

// decodeCSI decodes one sequence starting with ESC '[' and returns the
// number of bytes consumed.
func decodeCSI(rest []byte, tables Tables) (int, Token, error) {
	// Extended form with a modifier digit: ESC '[' '1' ';' m x.
	// The modifier digit at rest[4] is consumed but carries no semantics.
	if len(rest) >= 4 && rest[2] == '1' && rest[3] == ';' {
		if len(rest) < 6 {
			return 0, Token{}, &MalformedSequenceError{Seq: copyBytes(rest)}
		}
		if key, ok := tables.CSILetter[rest[5]]; ok {
			return 6, Token{Key: key}, nil
		}
		return 6, Token{}, &UnknownSequenceError{Seq: copyBytes(rest[:6])}
	}

	if len(rest) < 3 {
		return 0, Token{}, &MalformedSequenceError{Seq: copyBytes(rest)}
	}

	if rest[2] >= '0' && rest[2] <= '9' {
		tilde := bytes.IndexByte(rest, '~')
		if tilde < 0 {
			return 0, Token{}, &MalformedSequenceError{Seq: copyBytes(rest)}
		}
		code := rest[2:tilde]
		if semi := bytes.IndexByte(code, ';'); semi >= 0 {
			code = code[:semi]
		}
		if key, ok := tables.CSINumeric[string(code)]; ok {
			return tilde + 1, Token{Key: key}, nil
		}
		return tilde + 1, Token{}, &UnknownSequenceError{Seq: copyBytes(rest[:tilde+1])}
	}

	if key, ok := tables.CSILetter[rest[2]]; ok {
		return 3, Token{Key: key}, nil
	}
	return 3, Token{}, &UnknownSequenceError{Seq: copyBytes(rest[:3])}
}

func copyBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
