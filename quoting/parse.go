// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quoting

import "strings"

// Parse interprets s as exactly one shell word under the dialect's
// grammar and returns the bytes it denotes.  It is strict: anything
// that would not survive a real shell byte for byte, from an
// unterminated quote down to a bare metacharacter or a tilde at the
// start of the word, is a SyntaxError rather than a lenient parse.
// Line continuations are removed as a shell would.
//
// Parse is the round-trip oracle for Quote: for any word w,
// Parse(Quote(w)) returns w.
func (d *Dialect) Parse(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", ErrNUL
	}
	if d.Printable {
		for i := 0; i < len(s); i++ {
			if !printable(s[i]) {
				return "", SyntaxError{i, "unprintable byte"}
			}
		}
	}
	var out []byte
	var quoted bool
	for i := 0; i < len(s); {
		switch b := s[i]; {
		case b == '\'':
			j := strings.IndexByte(s[i+1:], '\'')
			if j < 0 {
				return "", SyntaxError{i, "unterminated single quote"}
			}
			out = append(out, s[i+1:i+1+j]...)
			i += j + 2
			quoted = true
		case b == '"':
			var err error
			if out, i, err = parseDouble(out, s, i); err != nil {
				return "", err
			}
			quoted = true
		case b == '\\':
			if i+1 == len(s) {
				return "", SyntaxError{i, "trailing backslash"}
			}
			if s[i+1] != '\n' { // backslash-newline vanishes
				out = append(out, s[i+1])
			}
			i += 2
		case d.ANSI && b == '$' && i+1 < len(s) && s[i+1] == '\'':
			var err error
			if out, i, err = parseAnsi(out, s, i); err != nil {
				return "", err
			}
			quoted = true
		case !bare(b, i == 0):
			if chartbl[b]&startChar != 0 {
				return "", SyntaxError{i, "unsafe byte at word start"}
			}
			return "", SyntaxError{i, "bare metacharacter"}
		default:
			out = append(out, b)
			i++
		}
	}
	// Quotes can make an empty word; nothing else can.
	if len(out) == 0 && !quoted {
		return "", SyntaxError{0, "empty word"}
	}
	return string(out), nil
}

// parseDouble scans a "…" string starting at s[i] == '"'.
func parseDouble(out []byte, s string, i int) ([]byte, int, error) {
	open := i
	for i++; i < len(s); {
		switch b := s[i]; b {
		case '"':
			return out, i + 1, nil
		case '\\':
			if i+1 == len(s) {
				return nil, 0, SyntaxError{open,
					"unterminated double quote"}
			}
			switch c := s[i+1]; c {
			case '$', '`', '"', '\\':
				out = append(out, c)
				i += 2
			case '\n': // line continuation
				i += 2
			default: // backslash stays live
				out = append(out, '\\')
				i++
			}
		case '$', '`':
			return nil, 0, SyntaxError{i, "expansion inside double quotes"}
		default:
			out = append(out, b)
			i++
		}
	}
	return nil, 0, SyntaxError{open, "unterminated double quote"}
}

// parseAnsi scans a $'…' string starting at s[i] == '$'.  The escapes
// accepted are a superset of the ones appendAnsi emits; anything bash
// would pass through verbatim instead of decoding is an error here.
func parseAnsi(out []byte, s string, i int) ([]byte, int, error) {
	open := i
	for i += 2; i < len(s); {
		switch b := s[i]; b {
		case '\'':
			return out, i + 1, nil
		case '\\':
			if i+1 == len(s) {
				return nil, 0, SyntaxError{open,
					"unterminated quote"}
			}
			var c byte
			switch d := s[i+1]; d {
			case 'a':
				c = '\a'
			case 'b':
				c = '\b'
			case 'e':
				c = 0x1b
			case 'f':
				c = '\f'
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'v':
				c = '\v'
			case '\\', '\'', '"', '?':
				c = d
			case 'x':
				v, n := hexByte(s[i+2:])
				if n == 0 {
					return nil, 0, SyntaxError{i, "bad hex escape"}
				}
				if v == 0 {
					return nil, 0, ErrNUL
				}
				out = append(out, v)
				i += 2 + n
				continue
			default:
				return nil, 0, SyntaxError{i, "unknown escape"}
			}
			out = append(out, c)
			i += 2
		default:
			out = append(out, b)
			i++
		}
	}
	return nil, 0, SyntaxError{open, "unterminated quote"}
}

// hexByte decodes up to two hex digits, returning the value and the
// number of digits eaten.
func hexByte(s string) (byte, int) {
	var v byte
	var n int
	for ; n < 2 && n < len(s); n++ {
		switch b := s[n]; {
		case b >= '0' && b <= '9':
			v = v<<4 | (b - '0')
		case b >= 'a' && b <= 'f':
			v = v<<4 | (b - 'a' + 10)
		case b >= 'A' && b <= 'F':
			v = v<<4 | (b - 'A' + 10)
		default:
			return v, n
		}
	}
	return v, n
}
