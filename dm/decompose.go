// Package dm provides a way to query Unicode decomposition mappings and
// perform a custom compatibility decomposition using
// [compatibility mapping tags].
//
// This is the single-rune oracle that the norm package drives to build its
// NFD/NFKD/NFC/NFKC transforms; dm itself stays
// single-purpose (map one rune to its one-level decomposition) and does not
// know about canonical reordering, Hangul, or recomposition. Use this
// package directly only when a custom decomposition is required, e.g. one
// that extends or excludes particular compatibility mapping tags.
//
// See [Unicode Normalization Forms] and [Character Decomposition Mapping].
//
// [Unicode Normalization Forms]: https://unicode.org/reports/tr15/
// [Character Decomposition Mapping]: https://www.unicode.org/reports/tr44/#Character_Decomposition_Mappings
package dm

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Type is the compatibility formatting tag that controls decomposition
// mapping. The exact integer value is arbitrary and has no meaning.
type Type int

// IsCompat returns true if Type is any of the compatibility mapping types
// i.e. is not Canonical, and is not None.
func (t Type) IsCompat() bool {
	return t >= Compat
}

// IsCanonical returns true if Type is a canonical mapping.
func (t Type) IsCanonical() bool {
	return t == Canonical
}

const (
	None      Type = 0
	Canonical Type = 1 // Canonical
	Compat    Type = 2 // Otherwise unspecified compatibility character
	Encircled Type = 3 // Encircled form
	Final     Type = 4 // Final presentation form (Arabic)
	Font      Type = 5 // Font variant (for example, a blackletter form)
	Fraction  Type = 6 // Vulgar fraction form
	Initial   Type = 7 // Initial presentation form (Arabic)
	Isolated  Type = 8 // Isolated presentation form (Arabic)
	Medial    Type = 9 // Medial presentation form (Arabic)
	Narrow    Type = 10 // Narrow (or hankaku) compatibility character
	NoBreak   Type = 11 // No-break version of a space or hyphen
	Small     Type = 12 // Small variant form (CNS compatibility)
	Square    Type = 13 // CJK squared font variant
	Sub       Type = 14 // Subscript form
	Super     Type = 15 // Superscript form
	Vertical  Type = 16 // Vertical layout presentation form
	Wide      Type = 17 // Wide (or zenkaku) compatibility character
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Canonical:
		return "Canonical"
	case Compat:
		return "Compat"
	case Encircled:
		return "Encircled"
	case Final:
		return "Final"
	case Font:
		return "Font"
	case Fraction:
		return "Fraction"
	case Initial:
		return "Initial"
	case Isolated:
		return "Isolated"
	case Medial:
		return "Medial"
	case Narrow:
		return "Narrow"
	case NoBreak:
		return "NoBreak"
	case Small:
		return "Small"
	case Square:
		return "Square"
	case Sub:
		return "Sub"
	case Super:
		return "Super"
	case Vertical:
		return "Vertical"
	case Wide:
		return "Wide"
	}
	panic(fmt.Sprintf("dm: unknown Type %d", int(t)))
}

// Map returns the decomposition mapping type and mappings for a single input
// rune. If there are no decomposition mappings, the returned type is None
// and the returned mappings are undefined.
//
// Note that, while the Unicode data files also have a default mapping of a
// character to itself, these are not counted (None is returned instead).
//
// Note also that this is a single mapping, not a full decomposition. For that,
// use dm.CD.String for a full canonical decomposition, dm.KD.String for a
// full compatibility decomposition, or [New] to define a custom decomposition
// and call the [Decomposer.String] method on it.
//
// Hangul syllables never appear in this table: they decompose
// algorithmically, and are handled directly by the norm package rather than
// through a mapping lookup.
//
// For historical Unicode reasons, the longest compatibility mapping is 18
// characters long. Compatibility mappings are guaranteed to be no longer than
// 18 characters, although most consist of just a few characters.
func Map(r rune) (Type, []rune) {
	if r >= 0xFF01 && r <= 0xFF5E {
		// Fullwidth forms decompose to their ASCII equivalent via simple
		// offset arithmetic rather than a table entry, the same way Hangul
		// syllables are handled algorithmically instead of tabulated.
		return Wide, []rune{r - 0xFF01 + 0x21}
	}

	n := len(dtis)
	i := sort.Search(n, func(i int) bool {
		return r <= dtis[i].codepoint
	})

	if (i == n) || (dtis[i].codepoint != r) {
		return None, nil
	}

	dt := dtis[i].dt
	if dt == None {
		return None, nil
	}

	dmi := dtis[i].dmi
	dml := dtis[i].dml
	ms := dms[dmi : dmi+dml]

	return dt, ms
}

// Decomposer performs a full recursive decomposition of an input, using only
// the decomposition types it selects. It does not apply canonical reordering.
type Decomposer uint64

// CD is a Decomposer that performs a canonical decomposition.
var CD = Decomposer(1 << Canonical)

// KD is a Decomposer that performs a compatibility decomposition.
var KD = Decomposer(0xFFFFFFFF)

// New returns a new Decomposer that performs a decomposition, but only
// for certain decomposition types.
func New(types ...Type) Decomposer {
	var d Decomposer
	return d.Extend(types...)
}

// Extend returns a canonical decomposer, extended with the compatibility
// mapping types given here, to create a new compatibility decomposer.
func Extend(types ...Type) Decomposer {
	return CD.Extend(types...)
}

// Except returns a compatibility decomposer, except for the compatibility
// mapping types given here.
func Except(types ...Type) Decomposer {
	return KD.Except(types...)
}

// Extend returns a new Decomposer that performs a decomposition on the same
// types as its parent, in addition to those given here.
//
// For example:
//
//	dm.CD.Extend(dm.Super, dm.Sub)
func (d Decomposer) Extend(types ...Type) Decomposer {
	for _, t := range types {
		d = Decomposer(uint64(d) | (uint64(1) << t))
	}
	return d
}

// Except returns a new Decomposer that performs a decomposition on the same
// types as its parent, except those given here.
//
// For example:
//
//	dm.KD.Except(dm.Super, dm.Sub)
func (d Decomposer) Except(types ...Type) Decomposer {
	for _, t := range types {
		d = Decomposer(uint64(d) & (^(uint64(1) << t)))
	}
	return d
}

// Map returns the decomposition type and decomposition mapping for an input
// rune, provided that the decomposition type is one that the Decomposer
// supports. If the decomposition mapping is not supported, the unsupported
// type is returned and the returned mappings are nil. If there are no
// decomposition mappings, the returned type is None and the returned mappings
// are nil.
func (d Decomposer) Map(r rune) (Type, []rune) {
	dt, dm := Map(r)
	mask := uint64(1) << dt
	if (uint64(d) & mask) != mask {
		return dt, nil
	}
	return dt, dm
}

// String returns the full decomposition of s, but only applies the
// decomposition mappings that match the types registered with the Decomposer
// with [New], [Decomposer.Extend], or [Decomposer.Except].
//
// This does not apply canonical reordering of combining marks, and does not
// special-case Hangul syllables: for that, use the norm package.
func (d Decomposer) String(s string) (string, error) {
	dest := make([]rune, 0, len(s))
	d.flattenRecursive(&dest, []rune(s))
	return string(dest), nil
}

func (d Decomposer) flattenRecursive(dest *[]rune, xs []rune) {
	for _, x := range xs {
		_, dm := d.Map(x)

		if len(dm) == 0 {
			*dest = append(*dest, x)
		} else {
			d.flattenRecursive(dest, dm)
		}
	}
}

// Transformer returns an object implementing the [transform.Transformer]
// interface that applies the decomposition mapping specified by the
// Decomposer across its input, one rune at a time, without reordering
// combining marks or handling Hangul. The norm package does not use it: norm
// calls [Decomposer.Map] directly and does its own reordering and
// recomposition.
//
// The returned transformer is stateless, so may be used concurrently.
func (d Decomposer) Transformer() transform.Transformer {
	return mappingTransformer{d, nil}
}

// TransformerWithFilter is like [Transformer], however for each input rune x
// where filter(x) returns false, the decomposition process is skipped and
// that rune is output normally.
func (d Decomposer) TransformerWithFilter(filter func(x rune) bool) transform.Transformer {
	return mappingTransformer{d, filter}
}

// mappingTransformer applies a mapping, but doesn't reorder the input.
type mappingTransformer struct {
	d      Decomposer
	filter func(x rune) bool
}

func (m mappingTransformer) Reset() {}

func (m mappingTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	d := m.d
	for {
		r, rZ := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError {
			if (rZ == 0) && atEOF {
				return nDst, nSrc, nil
			}
			if rZ <= 1 && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if atEOF {
				return nDst, nSrc, fmt.Errorf("dm: invalid utf8 sequence")
			}
			return nDst, nSrc, transform.ErrShortSrc
		}

		if (m.filter != nil) && !m.filter(r) {
			if cap(dst)-nDst < rZ {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], r)
			nSrc += rZ
			continue
		}

		_, mapping := d.Map(r)

		if len(mapping) == 0 {
			if cap(dst)-nDst < rZ {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], r)
			nSrc += rZ
		} else {
			// Compatibility mappings are guaranteed to be no longer than
			// 18 characters.
			if cap(dst)-nDst < 18*utf8.UTFMax {
				return nDst, nSrc, transform.ErrShortDst
			}
			var buf [18]rune
			bufs := buf[0:0]
			d.flattenRecursive(&bufs, mapping)
			for i := 0; i < len(bufs); i++ {
				nDst += utf8.EncodeRune(dst[nDst:], bufs[i])
			}
			nSrc += rZ
		}
	}
}
