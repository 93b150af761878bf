package norm

import (
	"reflect"
	"testing"
)

func TestReBuf_InsertOrdersByCCC(t *testing.T) {
	// 0x0307 COMBINING DOT ABOVE has CCC 230; 0x0323 COMBINING DOT BELOW
	// has CCC 220, so it must sort before 0x0307 regardless of insertion
	// order.
	var b reBuf
	b.insert(0x0307)
	b.insert(0x0323)

	got := b.marks(nil)
	want := []rune{0x0323, 0x0307}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestReBuf_StableAmongEqualCCC(t *testing.T) {
	// Four copies of the same CCC-230 mark, inserted in order, plus one
	// CCC-220 mark: the four 230s must keep their relative order, and the
	// 220 must land before all of them.
	var b reBuf
	for i := 0; i < 4; i++ {
		b.insert(0x0307)
	}
	b.insert(0x0323)

	got := b.marks(nil)
	want := []rune{0x0323, 0x0307, 0x0307, 0x0307, 0x0307}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestReBuf_FlushResets(t *testing.T) {
	var b reBuf
	b.insert(0x0307)
	b.insert(0x0323)

	out := b.flush([]rune{'d'})
	want := []rune{'d', 0x0323, 0x0307}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
	if !b.empty() {
		t.Error("buffer should be empty after flush")
	}
	if out2 := b.flush(nil); out2 != nil {
		t.Errorf("flushing an empty buffer should not append anything, got %x", out2)
	}
}

func TestReBuf_SpillToRest(t *testing.T) {
	// Insert enough marks to force spillover past c0/c1 into rest, in an
	// order designed to exercise all three branches of the spill case in
	// insert: smaller than c0, between c0 and c1, and within rest.
	var b reBuf
	marks := []rune{0x0307, 0x0307, 0x0334, 0x0323, 0x0307} // CCC 230,230,1,220,230
	for _, m := range marks {
		b.insert(m)
	}

	got := b.marks(nil)
	want := []rune{0x0334, 0x0323, 0x0307, 0x0307, 0x0307}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}
