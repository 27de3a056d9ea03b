// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quoting

import "testing"

var classTests = []struct {
	b byte
	c byte
}{
	{'\t', mt}, {'\n', nl}, {' ', mt}, {'!', mt}, {'"', dq},
	{'#', ws}, {'$', dq}, {'%', pl}, {'&', mt}, {'\'', sq},
	{'(', mt}, {')', mt}, {'*', mt}, {'+', pl}, {',', pl},
	{'-', pl}, {'.', pl}, {'/', pl}, {'9', pl}, {':', pl},
	{';', mt}, {'<', mt}, {'=', pl}, {'>', mt}, {'?', mt},
	{'@', pl}, {'Z', pl}, {'[', mt}, {'\\', dq}, {']', mt},
	{'^', pl}, {'_', pl}, {'`', dq}, {'z', pl}, {'{', mt},
	{'|', mt}, {'}', mt}, {'~', ws}, {0x7f, mt}, {0x80, pl},
	{0xff, pl},
}

func TestChartbl(t *testing.T) {
	if chartbl[0] != no {
		t.Errorf("chartbl[0] = %#x, want 0", chartbl[0])
	}
	for i := 1; i < 256; i++ {
		c := chartbl[i]
		if pm := c & (plainChar | metaChar); pm == 0 ||
			pm == plainChar|metaChar {
			t.Errorf("chartbl[%#x] = %#x: "+
				"not exactly one of plain, meta", i, c)
		}
		if c&startChar != 0 && c&plainChar == 0 {
			t.Errorf("chartbl[%#x] = %#x: start bit on a "+
				"metacharacter", i, c)
		}
		if c&dquoChar != 0 && c&metaChar == 0 {
			t.Errorf("chartbl[%#x] = %#x: dquo bit without "+
				"meta", i, c)
		}
		if c&quoteChar != 0 != (i == '\'') {
			t.Errorf("chartbl[%#x] = %#x: quote bit", i, c)
		}
		if c&contChar != 0 != (i == '\n') {
			t.Errorf("chartbl[%#x] = %#x: continuation bit", i, c)
		}
		if i >= 0x80 && c != pl {
			t.Errorf("chartbl[%#x] = %#x: high bytes are "+
				"ordinary", i, c)
		}
	}
	for _, tt := range classTests {
		if c := chartbl[tt.b]; c != tt.c {
			t.Errorf("chartbl[%q] = %#x, want %#x", tt.b, c, tt.c)
		}
	}
}

func TestBare(t *testing.T) {
	for _, tt := range []struct {
		b           byte
		start, cont bool
	}{
		{'a', true, true},
		{'/', true, true},
		{0x80, true, true},
		{'~', false, true},
		{'#', false, true},
		{' ', false, false},
		{'\'', false, false},
		{'\n', false, false},
		{0, false, false},
	} {
		if got := bare(tt.b, true); got != tt.start {
			t.Errorf("bare(%q, true) = %v", tt.b, got)
		}
		if got := bare(tt.b, false); got != tt.cont {
			t.Errorf("bare(%q, false) = %v", tt.b, got)
		}
	}
}

var costTests = []struct {
	d     *Dialect
	tier  Tier
	b     byte
	start bool
	want  int
}{
	{POSIX, Unquoted, 'a', true, 1},
	{POSIX, Unquoted, 0x80, false, 1},
	{POSIX, Unquoted, '~', true, Forbidden},
	{POSIX, Unquoted, '~', false, 1},
	{POSIX, Unquoted, '#', true, Forbidden},
	{POSIX, Unquoted, '#', false, 1},
	{POSIX, Unquoted, ' ', false, Forbidden},
	{POSIX, Unquoted, '\n', false, Forbidden},
	{POSIX, Unquoted, 0x01, false, Forbidden},

	{POSIX, Backslash, 'a', true, 1},
	{POSIX, Backslash, ' ', false, 2},
	{POSIX, Backslash, '\'', false, 2},
	{POSIX, Backslash, '\\', false, 2},
	{POSIX, Backslash, '$', false, 2},
	{POSIX, Backslash, '~', true, 2},
	{POSIX, Backslash, '~', false, 1},
	{POSIX, Backslash, 0x01, false, 2},
	{POSIX, Backslash, 0x7f, false, 2},
	{POSIX, Backslash, '\n', false, Forbidden},

	{POSIX, Double, 'a', false, 1},
	{POSIX, Double, '$', false, 2},
	{POSIX, Double, '`', false, 2},
	{POSIX, Double, '"', false, 2},
	{POSIX, Double, '\\', false, 2},
	{POSIX, Double, '\'', false, 1},
	{POSIX, Double, '\n', false, 1},
	{POSIX, Double, '~', true, 1},
	{POSIX, Double, 0x01, false, 1},

	{POSIX, Single, '\'', false, Forbidden},
	{POSIX, Single, 'a', false, 1},
	{POSIX, Single, '"', false, 1},
	{POSIX, Single, '\\', false, 1},
	{POSIX, Single, '\n', false, 1},
	{POSIX, Single, 0x01, false, 1},

	{Bash, Unquoted, 'a', false, 1},
	{Bash, Unquoted, 0x80, false, 1},
	{Bash, Unquoted, '\t', false, Forbidden},
	{Bash, Backslash, ' ', false, 2},
	{Bash, Backslash, '\t', false, Forbidden},
	{Bash, Backslash, 0x7f, false, Forbidden},
	{Bash, Double, '\n', false, Forbidden},
	{Bash, Single, '\n', false, Forbidden},
	{Bash, Single, 0x01, false, Forbidden},

	{Bash, AnsiC, 'a', false, 1},
	{Bash, AnsiC, ' ', false, 1},
	{Bash, AnsiC, '$', false, 1},
	{Bash, AnsiC, '`', false, 1},
	{Bash, AnsiC, '"', false, 1},
	{Bash, AnsiC, '~', true, 1},
	{Bash, AnsiC, 0x80, false, 1},
	{Bash, AnsiC, '\'', false, 2},
	{Bash, AnsiC, '\\', false, 2},
	{Bash, AnsiC, '\a', false, 2},
	{Bash, AnsiC, '\t', false, 2},
	{Bash, AnsiC, '\n', false, 2},
	{Bash, AnsiC, '\r', false, 2},
	{Bash, AnsiC, 0x1b, false, 2},
	{Bash, AnsiC, 0x01, false, 4},
	{Bash, AnsiC, 0x1f, false, 4},
	{Bash, AnsiC, 0x7f, false, 4},
}

func TestCost(t *testing.T) {
	for _, tt := range costTests {
		ts := &tt.d.Tiers[tt.tier]
		if got := ts.Cost(tt.b, tt.start); got != tt.want {
			t.Errorf("%s %v Cost(%q, %v) = %d, want %d",
				tt.d.Name, tt.tier, tt.b, tt.start,
				got, tt.want)
		}
	}
}

var appendTests = []struct {
	d     *Dialect
	tier  Tier
	b     byte
	start bool
	want  string
}{
	{POSIX, Unquoted, 'a', true, "a"},
	{POSIX, Backslash, 'a', false, "a"},
	{POSIX, Backslash, ' ', false, `\ `},
	{POSIX, Backslash, '~', true, `\~`},
	{POSIX, Backslash, '~', false, "~"},
	{POSIX, Backslash, '\'', false, `\'`},
	{POSIX, Double, 'a', false, "a"},
	{POSIX, Double, '$', false, `\$`},
	{POSIX, Double, '\'', false, "'"},
	{POSIX, Single, '\n', false, "\n"},
	{Bash, AnsiC, 'A', false, "A"},
	{Bash, AnsiC, 0xab, false, "\xab"},
	{Bash, AnsiC, '\t', false, `\t`},
	{Bash, AnsiC, 0x1b, false, `\e`},
	{Bash, AnsiC, '\'', false, `\'`},
	{Bash, AnsiC, '\\', false, `\\`},
	{Bash, AnsiC, 0x01, false, `\x01`},
	{Bash, AnsiC, 0x7f, false, `\x7f`},
}

func TestAppend(t *testing.T) {
	for _, tt := range appendTests {
		ts := &tt.d.Tiers[tt.tier]
		if got := ts.Append(nil, tt.b, tt.start); string(got) != tt.want {
			t.Errorf("%s %v Append(%q, %v) = %q, want %q",
				tt.d.Name, tt.tier, tt.b, tt.start,
				got, tt.want)
		}
		if c := ts.Cost(tt.b, tt.start); c != len(tt.want) {
			t.Errorf("%s %v Cost(%q, %v) = %d, Append emits %d",
				tt.d.Name, tt.tier, tt.b, tt.start,
				c, len(tt.want))
		}
	}
}

func TestTierString(t *testing.T) {
	for tier, want := range map[Tier]string{
		Unquoted: "unquoted",
		Single:   "single-quoted",
		AnsiC:    "ansi-c",
		-1:       "invalid tier",
		99:       "invalid tier",
	} {
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q",
				int(tier), got, want)
		}
	}
}

func TestDialects(t *testing.T) {
	for _, d := range []*Dialect{POSIX, Bash} {
		for i := range d.Tiers {
			ts := &d.Tiers[i]
			if ts.Tier != Tier(i) {
				t.Errorf("%s.Tiers[%d].Tier = %v", d.Name, i, ts.Tier)
			}
			if ts.Quoted != (ts.Tier != Unquoted) {
				t.Errorf("%s %v: Quoted = %v",
					d.Name, ts.Tier, ts.Quoted)
			}
			// Every byte of the word costs at least one
			// output byte wherever it is representable.
			for b := 1; b < 256; b++ {
				if c := ts.Cost(byte(b), false); c < 1 {
					t.Errorf("%s %v Cost(%#x) = %d",
						d.Name, ts.Tier, b, c)
				}
			}
		}
	}
	if n := len(POSIX.Tiers); n != 4 {
		t.Errorf("POSIX has %d tiers", n)
	}
	if n := len(Bash.Tiers); n != 5 {
		t.Errorf("Bash has %d tiers", n)
	}
	if POSIX.ANSI || POSIX.Printable {
		t.Errorf("POSIX flags: ANSI %v Printable %v",
			POSIX.ANSI, POSIX.Printable)
	}
	if !Bash.ANSI || !Bash.Printable {
		t.Errorf("Bash flags: ANSI %v Printable %v",
			Bash.ANSI, Bash.Printable)
	}
	for _, d := range []*Dialect{POSIX, Bash} {
		if p := d.Tiers[Single].Pref; p != -3 {
			t.Errorf("%s single-quote weight %d", d.Name, p)
		}
		if p := d.Tiers[Double].Pref; p != -1 {
			t.Errorf("%s double-quote weight %d", d.Name, p)
		}
		if p := d.Tiers[Unquoted].Pref; p != 0 {
			t.Errorf("%s unquoted weight %d", d.Name, p)
		}
	}
}
