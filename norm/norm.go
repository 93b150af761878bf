// Package norm implements the four standard Unicode normalization forms,
// built on dm for decomposition mappings, ccc for canonical combining
// class, and a canonical reordering buffer and composition state machine of
// its own for Hangul and primary composition.
package norm

import (
	"golang.org/x/text/transform"

	"github.com/tawesoft/norm/dm"
)

// Form identifies one of the four standard Unicode normalization forms.
type Form int

const (
	NFD Form = iota
	NFKD
	NFC
	NFKC
)

func (f Form) String() string {
	switch f {
	case NFD:
		return "NFD"
	case NFKD:
		return "NFKD"
	case NFC:
		return "NFC"
	case NFKC:
		return "NFKC"
	}
	panic("norm: unknown Form")
}

func (f Form) decomposer() dm.Decomposer {
	if f == NFKD || f == NFKC {
		return dm.KD
	}
	return dm.CD
}

func (f Form) composes() bool {
	return f == NFC || f == NFKC
}

// Runes returns s normalized to form f, as a slice of runes.
func (f Form) Runes(s string) ([]rune, error) {
	rs, err := decomposeString(f.decomposer(), s)
	if err != nil {
		return nil, err
	}
	if f.composes() {
		rs = composeRunes(rs)
	}
	return rs, nil
}

// Normalize returns s normalized to form f.
func (f Form) Normalize(s string) (string, error) {
	rs, err := f.Runes(s)
	if err != nil {
		return "", err
	}
	return string(rs), nil
}

// Bytes returns b normalized to form f.
func (f Form) Bytes(b []byte) ([]byte, error) {
	s, err := f.Normalize(string(b))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Append normalizes src to form f and appends the result to dst, returning
// the extended buffer. This is a supplemented convenience absent from the
// minimal form; it mirrors the Append methods golang.org/x/text/unicode/norm
// provides alongside String and Bytes.
func (f Form) Append(dst, src []byte) ([]byte, error) {
	s, err := f.Normalize(string(src))
	if err != nil {
		return nil, err
	}
	return append(dst, s...), nil
}

// IsNormalized reports whether s is already in form f.
//
// This is a supplemented feature implemented the simple way: normalize and
// compare. A production quick-check implementation would instead consult a
// precomputed NFC_Quick_Check/NFD_Quick_Check property per rune and only
// fall back to a full normalize-and-compare on a Maybe result; that table
// isn't part of this curated data set (see DESIGN.md), so every call here
// costs a full pass.
func (f Form) IsNormalized(s string) (bool, error) {
	got, err := f.Normalize(s)
	if err != nil {
		return false, err
	}
	return got == s, nil
}

// Transformer returns a transform.Transformer that normalizes to form f.
//
// Normalization is not well-defined incrementally across an arbitrary byte
// boundary: a combining mark at the start of one chunk can reorder against,
// or compose with, a starter written out at the end of a previous chunk.
// Rather than get this wrong silently, the transformer buffers its entire
// input and only produces output once atEOF is true, at which point it
// normalizes the whole buffered value in one pass and drains it to dst
// across as many Transform calls as dst's capacity requires.
func (f Form) Transformer() transform.Transformer {
	return &formTransformer{form: f}
}

type formTransformer struct {
	form    Form
	buf     []byte
	out     []byte
	haveOut bool
}

func (t *formTransformer) Reset() {
	t.buf = t.buf[:0]
	t.out = nil
	t.haveOut = false
}

func (t *formTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.haveOut {
		t.buf = append(t.buf, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, nil
		}

		s, normErr := t.form.Normalize(string(t.buf))
		if normErr != nil {
			return 0, nSrc, normErr
		}
		t.out = []byte(s)
		t.haveOut = true
	}

	n := copy(dst, t.out)
	t.out = t.out[n:]
	if len(t.out) > 0 {
		return n, nSrc, transform.ErrShortDst
	}
	return n, nSrc, nil
}
