// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quoting implements low-level POSIX shell word quoting details.
package quoting // import "github.com/unixdj/shq/quoting"

import (
	"errors"
	"fmt"
)

// A Tier is a quoting mechanism a word, or a part of it, can be
// rendered in.
type Tier int8

const (
	Unquoted  Tier = iota // bare bytes, no escapes
	Backslash             // bare bytes, metacharacters escaped
	Double                // "…"
	Single                // '…'
	AnsiC                 // $'…' (not POSIX)
)

var tierNames = [...]string{
	"unquoted", "backslash", "double-quoted", "single-quoted", "ansi-c",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "invalid tier"
	}
	return tierNames[t]
}

// Forbidden is the cost of a byte a tier cannot represent.
const Forbidden = 1 << 30

// A TierSpec describes one tier of a Dialect.
//
// Cost returns the number of bytes the tier emits for b, or Forbidden.
// Append emits them.  The start argument tells whether b is the first
// byte of the word, where tilde expansion and comments can bite.
// Pref is the tie-break weight the tier contributes per opened
// segment.  Quoted marks tiers that quote their bytes rather than
// pass them bare; such segments count toward the symmetry preference.
type TierSpec struct {
	Tier        Tier
	Open, Close string
	Pref        int
	Quoted      bool
	Cost        func(b byte, start bool) int
	Append      func(dst []byte, b byte, start bool) []byte
}

// A Dialect is a shell grammar to quote for: an ordered set of tiers
// plus the parsing rules of the Parse oracle.  ANSI admits $'…'
// quoting.  Printable restricts control bytes to $'…' escapes,
// guaranteeing single-line output of printable characters.
//
// Dialects must not be modified after first use.
type Dialect struct {
	Name      string
	Tiers     []TierSpec
	ANSI      bool
	Printable bool
}

// Errors returned by Quote and Parse.
var (
	ErrNUL          = errors.New("shq: NUL byte in word")
	ErrNotEncodable = errors.New("shq: dialect cannot encode word")
)

// A SyntaxError reports text that does not parse as a single word
// under the dialect's grammar.  Off is the byte offset of the
// offending construct.
type SyntaxError struct {
	Off int
	Msg string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("shq: %s at offset %d", e.Msg, e.Off)
}

// chartbl bits: 00cqsdmp
//
//	c  0x20  no backslash escape (newline: \ + newline is a
//	         line continuation, not a literal)
//	q  0x10  the single quote
//	s  0x08  unsafe as the first byte of a word
//	d  0x04  needs a backslash inside "…"
//	m  0x02  metacharacter: quote or escape when bare
//	p  0x01  ordinary: safe bare at any position
//
// Control bytes other than newline carry only m: the grammar would
// pass them through bare, terminals and logs will not.
const (
	plainChar = 1 << iota // ordinary
	metaChar              // metacharacter
	dquoChar              // escaped inside "…"
	startChar             // unsafe at word start
	quoteChar             // single quote
	contChar              // line continuation hazard

	no = 0                     // NUL: unrepresentable
	pl = plainChar             // ordinary
	ws = plainChar | startChar // tilde, hash
	mt = metaChar              // metacharacter
	dq = metaChar | dquoChar   // dollar, backquote, dquote, backslash
	sq = metaChar | quoteChar  // single quote
	nl = metaChar | contChar   // newline
)

var chartbl = [256]byte{
	no, mt, mt, mt, mt, mt, mt, mt, mt, mt, nl, mt, mt, mt, mt, mt, // 0x00
	mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, mt, // 0x10
	mt, mt, dq, ws, dq, pl, mt, sq, mt, mt, mt, pl, pl, pl, pl, pl, // 0x20
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, mt, mt, pl, mt, mt, // 0x30
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0x40
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, mt, dq, mt, pl, pl, // 0x50
	dq, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0x60
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, mt, mt, mt, ws, mt, // 0x70
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0x80
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0x90
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xa0
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xb0
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xc0
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xd0
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xe0
	pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, pl, // 0xf0
}

// bare reports whether b may appear bare at the given position.
func bare(b byte, start bool) bool {
	return chartbl[b]&plainChar != 0 &&
		!(start && chartbl[b]&startChar != 0)
}

// printable reports whether b needs no $'…' escape under Printable
// dialects.  High bytes pass: that is how UTF-8 stays readable.
func printable(b byte) bool {
	return b >= 0x20 && b != 0x7f
}

func unquotedCost(b byte, start bool) int {
	if bare(b, start) {
		return 1
	}
	return Forbidden
}

func backslashCost(b byte, start bool) int {
	switch {
	case chartbl[b]&contChar != 0:
		return Forbidden
	case bare(b, start):
		return 1
	}
	return 2
}

func doubleCost(b byte, start bool) int {
	if chartbl[b]&dquoChar != 0 {
		return 2
	}
	return 1
}

func singleCost(b byte, start bool) int {
	if chartbl[b]&quoteChar != 0 {
		return Forbidden
	}
	return 1
}

func appendRaw(dst []byte, b byte, start bool) []byte {
	return append(dst, b)
}

func appendBackslash(dst []byte, b byte, start bool) []byte {
	if !bare(b, start) {
		dst = append(dst, '\\')
	}
	return append(dst, b)
}

func appendDouble(dst []byte, b byte, start bool) []byte {
	if chartbl[b]&dquoChar != 0 {
		dst = append(dst, '\\')
	}
	return append(dst, b)
}

// ansiEsc maps control bytes to their $'…' escape letters.
var ansiEsc = [256]byte{
	'\a': 'a', '\b': 'b', '\t': 't', '\n': 'n',
	'\v': 'v', '\f': 'f', '\r': 'r', 0x1b: 'e',
}

func ansiCost(b byte, start bool) int {
	switch {
	case b == '\'' || b == '\\' || ansiEsc[b] != 0:
		return 2
	case !printable(b):
		return 4 // \xHH
	}
	return 1
}

const hexDigits = "0123456789abcdef"

func appendAnsi(dst []byte, b byte, start bool) []byte {
	switch {
	case b == '\'' || b == '\\':
		return append(dst, '\\', b)
	case ansiEsc[b] != 0:
		return append(dst, '\\', ansiEsc[b])
	case !printable(b):
		return append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0xf])
	}
	return append(dst, b)
}

// onlyPrintable wraps a cost function, banning control bytes.
func onlyPrintable(cost func(byte, bool) int) func(byte, bool) int {
	return func(b byte, start bool) int {
		if !printable(b) {
			return Forbidden
		}
		return cost(b, start)
	}
}

// POSIX quotes for any POSIX sh: bare words where possible, backslash
// escapes, "…" and '…'.
var POSIX = &Dialect{
	Name: "posix",
	Tiers: []TierSpec{
		{Tier: Unquoted, Cost: unquotedCost, Append: appendRaw},
		{Tier: Backslash, Quoted: true,
			Cost: backslashCost, Append: appendBackslash},
		{Tier: Double, Open: `"`, Close: `"`, Pref: -1, Quoted: true,
			Cost: doubleCost, Append: appendDouble},
		{Tier: Single, Open: "'", Close: "'", Pref: -3, Quoted: true,
			Cost: singleCost, Append: appendRaw},
	},
}

// Bash quotes for bash, ksh, zsh and other shells with $'…' quoting.
// Its output is a single line of printable characters: control bytes,
// tab and newline included, are emitted as $'…' escapes.
var Bash = &Dialect{
	Name: "bash",
	Tiers: []TierSpec{
		{Tier: Unquoted,
			Cost: onlyPrintable(unquotedCost), Append: appendRaw},
		{Tier: Backslash, Quoted: true,
			Cost: onlyPrintable(backslashCost), Append: appendBackslash},
		{Tier: Double, Open: `"`, Close: `"`, Pref: -1, Quoted: true,
			Cost: onlyPrintable(doubleCost), Append: appendDouble},
		{Tier: Single, Open: "'", Close: "'", Pref: -3, Quoted: true,
			Cost: onlyPrintable(singleCost), Append: appendRaw},
		{Tier: AnsiC, Open: "$'", Close: "'", Quoted: true,
			Cost: ansiCost, Append: appendAnsi},
	},
	ANSI:      true,
	Printable: true,
}
