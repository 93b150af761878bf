package norm

import (
	"golang.org/x/exp/slices"

	"github.com/tawesoft/norm/ccc"
)

// reBuf is the canonical reordering buffer: the run of combining marks seen
// since the last starter, kept sorted non-decreasing by Canonical Combining
// Class, with relative order preserved among marks that share a class
// (a stable sort by insertion).
//
// The common case is zero, one, or two pending marks, so those are stored
// inline; reBuf only spills to the overflow slice beyond that, the same
// small-vector split tawesoft's ks package recommends replacing with
// golang.org/x/exp/slices.Grow for the rare long tail.
type reBuf struct {
	n      int // number of marks held: 0, 1, 2, or (2 + len(rest))
	c0, c1 rune
	rest   []rune
}

// empty reports whether the buffer holds no marks.
func (b *reBuf) empty() bool {
	return b.n == 0
}

// insert places c into the buffer at the position that keeps the sequence
// non-decreasing by CCC, after every existing mark whose CCC is less than
// or equal to c's CCC. c must be a combining mark (ccc.Of(c) > 0).
func (b *reBuf) insert(c rune) {
	cc := ccc.Of(c)

	switch {
	case b.n == 0:
		b.c0 = c
		b.n = 1

	case b.n == 1:
		if cc >= ccc.Of(b.c0) {
			b.c1 = c
		} else {
			b.c1 = b.c0
			b.c0 = c
		}
		b.n = 2

	default:
		// Spill into rest, which holds everything after c0, c1 in order.
		// Find the insertion point by scanning c0, c1, then rest.
		if cc < ccc.Of(b.c0) {
			b.rest = slices.Insert(b.rest, 0, b.c1)
			b.c1 = b.c0
			b.c0 = c
		} else if cc < ccc.Of(b.c1) {
			b.rest = slices.Insert(b.rest, 0, b.c1)
			b.c1 = c
		} else {
			i := 0
			for i < len(b.rest) && ccc.Of(b.rest[i]) <= cc {
				i++
			}
			b.rest = slices.Insert(b.rest, i, c)
		}
		b.n++
	}
}

// marks returns the buffer's contents as an ordered slice. The returned
// slice must not be retained past the next call to insert or flush.
func (b *reBuf) marks(scratch []rune) []rune {
	switch b.n {
	case 0:
		return nil
	case 1:
		return append(scratch[:0], b.c0)
	case 2:
		return append(scratch[:0], b.c0, b.c1)
	default:
		out := append(scratch[:0], b.c0, b.c1)
		return append(out, b.rest...)
	}
}

// flush appends the buffer's contents, in order, to out and resets the
// buffer to empty.
func (b *reBuf) flush(out []rune) []rune {
	switch b.n {
	case 0:
		return out
	case 1:
		out = append(out, b.c0)
	default:
		out = append(out, b.c0, b.c1)
		out = append(out, b.rest...)
	}
	b.reset()
	return out
}

func (b *reBuf) reset() {
	b.n = 0
	b.rest = b.rest[:0]
}
