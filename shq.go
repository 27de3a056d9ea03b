// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shq quotes words for POSIX shells.

Quote turns an arbitrary byte sequence into the shortest literal a
shell parses back into exactly those bytes, mixing bare text,
backslash escapes, "…" and '…' as the bytes demand.  Among renderings
of equal length it deterministically prefers single quotes over
double quotes over escapes, and one quoted span over several.  The
only input it rejects is one containing NUL, which no shell word can
carry.

Package quoting holds the machinery underneath: the byte
classification, the tier cost model, the bash $'…' dialect, and the
strict word parser every result is verified against before it is
returned.
*/
package shq // import "github.com/unixdj/shq"

import "github.com/unixdj/shq/quoting"

// Dialects, re-exported for convenience.
var (
	POSIX = quoting.POSIX
	Bash  = quoting.Bash
)

// ErrNUL is returned for words containing NUL.
var ErrNUL = quoting.ErrNUL

// Quote returns the shortest POSIX shell literal denoting word.
func Quote(word string) (string, error) {
	return QuoteDialect(word, quoting.POSIX)
}

// MustQuote is like Quote but panics on error.
func MustQuote(word string) string {
	s, err := Quote(word)
	if err != nil {
		panic(err)
	}
	return s
}

// AppendQuote appends the shortest POSIX shell literal denoting word
// to dst and returns the extended buffer.
func AppendQuote(dst []byte, word string) ([]byte, error) {
	return AppendQuoteDialect(dst, word, quoting.POSIX)
}

// QuoteDialect returns the shortest literal denoting word under the
// dialect d.
func QuoteDialect(word string, d *quoting.Dialect) (string, error) {
	b, err := AppendQuoteDialect(nil, word, d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
