package norm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tawesoft/norm/ccc"
	"github.com/tawesoft/norm/dm"
)

func TestExpandDecompose_Hangul(t *testing.T) {
	// 0xAC00 (GA) is an LV syllable with no trailing T.
	out := expandDecompose(dm.CD, 0xAC00, nil, 0)
	want := []rune{jamoLFirst, jamoVFirst}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}

	// 0xAC01 (GAG) has a trailing T.
	out = expandDecompose(dm.CD, 0xAC01, nil, 0)
	want = []rune{jamoLFirst, jamoVFirst, jamoTFirst + 1}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestExpandDecompose_OneLevel(t *testing.T) {
	// 0x1E0B (ḋ) canonically decomposes to 0x0064 0x0307 in one step; that
	// isn't further decomposable.
	out := expandDecompose(dm.CD, 0x1E0B, nil, 0)
	want := []rune{0x0064, 0x0307}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestExpandDecompose_NoMapping(t *testing.T) {
	out := expandDecompose(dm.CD, 'a', nil, 0)
	want := []rune{'a'}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestDecomposeString_ReordersAcrossExpansions(t *testing.T) {
	// http://wiki.squeak.org/squeak/6265: U+1E0B decomposes to d + 0307
	// (CCC 230), followed directly by a standalone U+0323 (CCC 220). The
	// two marks must end up reordered across the expansion boundary.
	out, err := decomposeString(dm.CD, string([]rune{0x1E0B, 0x0323}))
	if err != nil {
		t.Fatal(err)
	}
	want := []rune{0x0064, 0x0323, 0x0307}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestDecomposeString_TooManyNonStarters(t *testing.T) {
	s := "d" + strings.Repeat("̇", ccc.MaxNonStarters+1)
	_, err := decomposeString(dm.CD, s)
	if err != ccc.ErrMaxNonStarters {
		t.Errorf("got %v, want %v", err, ccc.ErrMaxNonStarters)
	}
}
