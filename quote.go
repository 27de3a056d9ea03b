// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shq

import (
	"strings"

	"github.com/unixdj/shq/quoting"
)

const inf = quoting.Forbidden

// A path is the running score of one state: the bytes the rendering
// takes so far, and the tie-break key.  Lexicographically smaller
// wins.  The key sums, per opened segment, the tier's preference
// weight and one point of symmetry penalty for quoted spans.
type path struct {
	cost, key int32
}

func (p path) less(q path) bool {
	return p.cost < q.cost || p.cost == q.cost && p.key < q.key
}

func (p path) extend(cost int) path {
	if p.cost >= inf || cost >= inf {
		return path{inf, 0}
	}
	p.cost += int32(cost)
	return p
}

func openKey(t *quoting.TierSpec) int32 {
	k := int32(t.Pref)
	if t.Quoted {
		k++
	}
	return k
}

// AppendQuoteDialect appends the shortest literal denoting word under
// the dialect d to dst and returns the extended buffer.
//
// The result is always reparsed with d.Parse before it is returned;
// a mismatch means the dialect's tables lie about the grammar, and
// panics rather than hand the caller a plausible-looking wrong word.
func AppendQuoteDialect(dst []byte, word string, d *quoting.Dialect) ([]byte, error) {
	if strings.IndexByte(word, 0) >= 0 {
		return dst, ErrNUL
	}
	mark := len(dst)
	if word == "" {
		// Bare nothing is not a word.
		dst = append(dst, "''"...)
	} else {
		var err error
		if dst, err = quote(dst, word, d); err != nil {
			return dst[:mark], err
		}
	}
	if got, err := d.Parse(string(dst[mark:])); err != nil || got != word {
		panic("shq: internal error: quoting does not round-trip")
	}
	return dst, nil
}

// A seg is one rendered segment: word[start:end] in a single tier.
type seg struct {
	tier       int
	start, end int
}

// quote finds the cheapest tier segmentation of word by a single
// left to right pass over (boundary, open tier) states.  At each
// boundary every tier's best path extends by one byte; switches
// close the segment and open another tier at the same boundary,
// reading extension values only, so that no degenerate empty
// segment ever enters a path.  A lone segment spanning the whole
// word carries no symmetry penalty; the DP cannot see the end from
// the middle, so those candidates are scanned separately and win
// equal scores.
func quote(dst []byte, word string, d *quoting.Dialect) ([]byte, error) {
	var (
		tiers = d.Tiers
		nt    = len(tiers)
		n     = len(word)
		// from[i*nt+t]: provenance of the best path for
		// word[:i] ending in an open tier t segment: t itself
		// if it extends the same segment, else the tier
		// switched away from at boundary i.
		from = make([]int8, (n+1)*nt)
		cur  = make([]path, nt)
		ext  = make([]path, nt)
	)
	for t := range tiers {
		cur[t] = path{int32(len(tiers[t].Open)), openKey(&tiers[t])}
		from[t] = int8(t)
	}
	for i := 1; i <= n; i++ {
		b, start := word[i-1], i == 1
		for t := range tiers {
			ext[t] = cur[t].extend(tiers[t].Cost(b, start))
			cur[t] = ext[t]
			from[i*nt+t] = int8(t)
		}
		if i == n { // switching at the end buys nothing
			break
		}
		for t := range tiers {
			for u := range tiers {
				if u == t || ext[u].cost >= inf {
					continue
				}
				p := ext[u]
				p.cost += int32(len(tiers[u].Close) +
					len(tiers[t].Open))
				p.key += openKey(&tiers[t])
				if p.less(cur[t]) {
					cur[t] = p
					from[i*nt+t] = int8(u)
				}
			}
		}
	}

	best, bt := path{inf, 0}, -1
	for t := range tiers {
		if cur[t].cost >= inf {
			continue
		}
		p := cur[t]
		p.cost += int32(len(tiers[t].Close))
		if bt < 0 || p.less(best) {
			best, bt = p, t
		}
	}
	wbest, wt := path{inf, 0}, -1
	for t := range tiers {
		if p, ok := wholeSpan(word, &tiers[t]); ok &&
			(wt < 0 || p.less(wbest)) {
			wbest, wt = p, t
		}
	}
	switch {
	case wt >= 0 && (bt < 0 || !best.less(wbest)):
		return renderSeg(dst, word, &tiers[wt], 0, n), nil
	case bt < 0:
		return dst, quoting.ErrNotEncodable
	}

	segs := make([]seg, 0, 8)
	t, end := bt, n
	for i := n; i > 0; {
		if f := int(from[i*nt+t]); f != t {
			segs = append(segs, seg{t, i, end})
			t, end = f, i
		}
		i-- // switch sources are extension values
	}
	segs = append(segs, seg{t, 0, end})
	for k := len(segs) - 1; k >= 0; k-- {
		s := segs[k]
		dst = renderSeg(dst, word, &tiers[s.tier], s.start, s.end)
	}
	return dst, nil
}

// wholeSpan scores word as one segment of tier t, without symmetry
// penalty.
func wholeSpan(word string, t *quoting.TierSpec) (path, bool) {
	c := len(t.Open) + len(t.Close)
	for i := 0; i < len(word); i++ {
		cc := t.Cost(word[i], i == 0)
		if cc >= inf {
			return path{}, false
		}
		c += cc
	}
	return path{int32(c), int32(t.Pref)}, true
}

func renderSeg(dst []byte, word string, t *quoting.TierSpec, start, end int) []byte {
	dst = append(dst, t.Open...)
	for i := start; i < end; i++ {
		dst = t.Append(dst, word[i], i == 0)
	}
	return append(dst, t.Close...)
}
