// Package ccc provides a way to query the Canonical Combining Class (CCC)
// of a Unicode code point, and to reorder a run of combining marks into
// canonical order.
//
// The data is stored as a sorted list of half-open codepoint ranges, each
// tagged with a single CCC value, and searched with a binary search. This
// mirrors the range-packing scheme used to build
// text/dm's decomposition table, but without the binary on-disk encoding:
// there is no generator pipeline in this module to produce one from a
// downloaded UCD archive, so the ranges below are a literal Go table
// instead of a loaded []byte blob (see DESIGN.md).
package ccc

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// CCC is a Canonical_Combining_Class value, an 8 bit non-negative integer
// Unicode character property. Zero means the code point is a starter.
type CCC = uint8

// ErrMaxNonStarters is returned by Reorder and ReorderRunes (and surfaces
// through any transform.Transformer built on top of them) when a single
// run of combining marks between two starters exceeds MaxNonStarters. This
// bounds the cost of reordering so that adversarial input (many thousands
// of combining marks glued to one base character) cannot make a single
// call take unbounded time.
var ErrMaxNonStarters = errors.New("ccc: too many non-starters between starters")

// MaxNonStarters is the largest run of combining marks (code points with
// CCC > 0) that Reorder and ReorderRunes will accept between two starters.
// It matches the worst-case canonical decomposition expansion length used
// throughout this module (see norm.MaxDecomposeLen).
const MaxNonStarters = 32

type rng struct {
	start rune
	end   rune // exclusive
	ccc   CCC
}

// Of returns the Canonical Combining Class of r. It returns 0 for starters,
// including any code point not covered by the table (the table lists
// ranges with a non-zero class, plus a few ranges recorded as class 0).
func Of(r rune) CCC {
	n := len(ranges)
	i := sort.Search(n, func(i int) bool {
		return ranges[i].end > r
	})
	if i == n || r < ranges[i].start {
		return 0
	}
	return ranges[i].ccc
}

// IsCombining reports whether r is a combining mark, i.e. Of(r) > 0.
func IsCombining(r rune) bool {
	return Of(r) > 0
}

// ReorderRunes sorts each maximal run of combining marks in xs into
// canonical order (non-decreasing CCC), preserving the relative order of
// marks that share a CCC (a stable sort), and leaves starters (CCC == 0)
// in place as run boundaries. It reorders in place.
//
// It returns ErrMaxNonStarters, leaving xs unmodified from the point of
// failure onward, if any single run exceeds MaxNonStarters marks.
func ReorderRunes(xs []rune) error {
	n := len(xs)
	for i := 0; i < n; {
		if Of(xs[i]) == 0 {
			i++
			continue
		}
		start := i
		for i < n && Of(xs[i]) != 0 {
			i++
			if i-start > MaxNonStarters {
				return ErrMaxNonStarters
			}
		}
		insertionSortByCCC(xs[start:i])
	}
	return nil
}

// insertionSortByCCC performs a stable insertion sort of a short run of
// combining marks by CCC. Runs are bounded by MaxNonStarters, so this is
// never asked to sort more than a few dozen elements; insertion sort keeps
// the hot path (zero or one combining mark) allocation-free and branch
// predictable.
func insertionSortByCCC(run []rune) {
	for i := 1; i < len(run); i++ {
		ci := Of(run[i])
		j := i
		for j > 0 && Of(run[j-1]) > ci {
			j--
		}
		if j == i {
			continue
		}
		v := run[i]
		copy(run[j+1:i+1], run[j:i])
		run[j] = v
	}
}

// Reorder is the []byte equivalent of ReorderRunes: it canonically reorders
// each maximal run of combining marks in data in place, by decoding and
// re-encoding UTF-8. Because reordering only permutes code points, the
// total byte length of data never changes.
//
// It returns ErrMaxNonStarters if any single run exceeds MaxNonStarters
// marks.
func Reorder(data []byte) error {
	n := len(data)
	var run []rune
	i := 0
	for i < n {
		r, sz := utf8.DecodeRune(data[i:])
		if Of(r) == 0 {
			i += sz
			continue
		}
		start := i
		run = run[:0]
		run = append(run, r)
		i += sz
		for i < n {
			r2, sz2 := utf8.DecodeRune(data[i:])
			if Of(r2) == 0 {
				break
			}
			if len(run) >= MaxNonStarters {
				return ErrMaxNonStarters
			}
			run = append(run, r2)
			i += sz2
		}
		insertionSortByCCC(run)
		b := []byte(string(run))
		copy(data[start:i], b)
	}
	return nil
}

// Transformer incrementally reorders a stream of text into canonical
// combining-class order, the streaming equivalent of Reorder. It buffers
// only the run of combining marks currently in flight (bounded by
// MaxNonStarters), so it can normalize arbitrarily long input without
// holding it all in memory.
//
// Transformer is not safe for concurrent use, but a single instance may be
// reused for one stream after another: by the time a Transform sequence
// reaches atEOF with a nil error, its internal buffer is empty again.
var Transformer transform.Transformer = &reorderTransformer{}

type reorderTransformer struct {
	run []rune
}

func (t *reorderTransformer) Reset() { t.run = t.run[:0] }

func (t *reorderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		r, rZ := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError {
			if rZ == 0 {
				if atEOF {
					n, ok := t.flush(dst[nDst:])
					nDst += n
					if !ok {
						return nDst, nSrc, transform.ErrShortDst
					}
					return nDst, nSrc, nil
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			if rZ <= 1 && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if atEOF {
				return nDst, nSrc, fmt.Errorf("ccc: invalid utf8 sequence")
			}
			return nDst, nSrc, transform.ErrShortSrc
		}

		if Of(r) == 0 {
			n, ok := t.flush(dst[nDst:])
			nDst += n
			if !ok {
				return nDst, nSrc, transform.ErrShortDst
			}
			if cap(dst)-nDst < rZ {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], r)
			nSrc += rZ
			continue
		}

		if len(t.run) >= MaxNonStarters {
			return nDst, nSrc, ErrMaxNonStarters
		}
		t.run = append(t.run, r)
		nSrc += rZ
	}
}

// flush writes the sorted pending run to dst and clears it, reporting how
// many bytes were written and whether dst had enough room. If dst was too
// small, nothing is written and the pending run is left intact for the
// next call.
func (t *reorderTransformer) flush(dst []byte) (int, bool) {
	if len(t.run) == 0 {
		return 0, true
	}
	insertionSortByCCC(t.run)
	need := 0
	for _, r := range t.run {
		need += utf8.RuneLen(r)
	}
	if cap(dst) < need {
		return 0, false
	}
	n := 0
	for _, r := range t.run {
		n += utf8.EncodeRune(dst[n:], r)
	}
	t.run = t.run[:0]
	return n, true
}
