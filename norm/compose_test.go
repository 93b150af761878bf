package norm

import (
	"reflect"
	"testing"
)

func TestComposeRunes_SimpleStarterPlusMark(t *testing.T) {
	// e + acute -> é
	out := composeRunes([]rune{'e', 0x0301})
	want := []rune{0x00E9}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestComposeRunes_SecondMarkWithoutComposition(t *testing.T) {
	// d + 0323 (CCC 220) composes to 1E0D; the following 0307 (CCC 230)
	// then has no primary composition with 1E0D, so it stays uncombined.
	if c, ok := composePair('d', 0x0323); !ok || c != 0x1E0D {
		t.Fatalf("precondition failed: composePair('d',0x0323) = (%U,%v)", c, ok)
	}

	out := composeRunes([]rune{'d', 0x0323, 0x0307})
	want := []rune{0x1E0D, 0x0307}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestComposeRunes_BlockedBySameClassMark(t *testing.T) {
	// A starter followed by two combining marks of the same class, neither
	// of which has a primary composition, stays uncombined and keeps its
	// relative order.
	out := composeRunes([]rune{'a', 0x0334, 0x0334}) // CCC 1 overlay tildes
	want := []rune{'a', 0x0334, 0x0334}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestComposeRunes_HangulLVT(t *testing.T) {
	out := composeRunes([]rune{jamoLFirst, jamoVFirst, jamoTFirst + 1})
	want := []rune{composeHangulLVT(composeHangulLV(0, 0), 1)}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestComposeRunes_MarkBeforeAnyStarter(t *testing.T) {
	// A combining mark with no preceding starter has nothing to compose
	// with and passes through unchanged.
	out := composeRunes([]rune{0x0301, 'a'})
	want := []rune{0x0301, 'a'}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}
