package dm_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/norm/dm"
	"golang.org/x/text/transform"
)

func ExampleMap() {
	input := '²'
	dt, m := dm.Map(input)
	fmt.Printf("%c => decomposition (%s): %s\n", input, dt, string(m))

	if dt.IsCompat() {
		fmt.Println("This is a compatibility decomposition, not a canonical one")
	} else if dt.IsCanonical() {
		fmt.Println("This is a canonical decomposition")
	} else {
		fmt.Println("There isn't a decomposition for this input")
	}

	// Output:
	// ² => decomposition (Super): 2
	// This is a compatibility decomposition, not a canonical one
}

func TestMap(t *testing.T) {
	type row struct {
		input rune
		dt    dm.Type
		dm    []rune
	}

	rows := []row{
		{'a', dm.None, nil},
		{'ñ', dm.Canonical, []rune{0x006E, 0x0303}},

		// canonical singleton replacement: Å is not a complete decomposition...
		{'Å', dm.Canonical, []rune{0x00C5}}, // ANGSTROM SIGN
		// ...Å from that is the final decomposition
		{'Å', dm.Canonical, []rune{0x0041, 0x030A}},

		{'Ω', dm.Canonical, []rune{0x03A9}}, // OHM SIGN

		{'²', dm.Super, []rune{'2'}},
		{'½', dm.Fraction, []rune{'1', 0x2044, '2'}},

		{'Ａ', dm.Wide, []rune{'A'}}, // fullwidth forms decompose algorithmically
	}

	for i, r := range rows {
		input, expectedDt, expectedDm := r.input, r.dt, r.dm
		dt, m := dm.Map(input)
		assert.Equal(t, expectedDt, dt, "test(%d) %c dt", i, input)
		assert.Equal(t, expectedDm, m, "test(%d) %c dm", i, input)
	}
}

func TestDecomposer_String(t *testing.T) {
	type row struct {
		dc     dm.Decomposer
		input  []rune
		output []rune
	}

	noFra := dm.Except(dm.Fraction)

	rows := []row{
		{dm.CD, []rune{'a'}, []rune{'a'}},
		{dm.CD, []rune{'ñ'}, []rune{0x006E, 0x0303}},

		// http://wiki.squeak.org/squeak/6265 -- not yet canonically reordered,
		// that is ccc's and norm's job, not dm's
		{dm.CD, []rune{0x1E0B, 0x0323}, []rune{0x0064, 0x0307, 0x0323}},

		{dm.CD, []rune{'Å'}, []rune{0x0041, 0x030A}},
		{dm.CD, []rune{'Ω'}, []rune{0x03A9}},

		{dm.KD, []rune{'²'}, []rune{'2'}},
		{dm.KD, []rune{'½'}, []rune{'1', 0x2044, '2'}},

		// Suppress certain decompositions
		{noFra, []rune{'½'}, []rune{'½'}},
	}

	for i, r := range rows {
		s, err := r.dc.String(string(r.input))
		assert.Nil(t, err, "test(%d)", i)
		assert.Equal(t, string(r.output), s, "test(%d) %x, got %x, expected %x", i, r.input, []rune(s), r.output)
	}
}

func TestDecomposer_Transform(t *testing.T) {
	type row struct {
		input    func(int) string
		expected func(int) string
		norm     dm.Decomposer
	}

	rows := []row{
		{
			func(i int) string { return strings.Repeat("a", i) },
			func(i int) string { return strings.Repeat("a", i) },
			dm.CD,
		},
		{
			func(i int) string { return strings.Repeat("abcde", i) },
			func(i int) string { return strings.Repeat("abcde", i) },
			dm.CD,
		},
		{
			func(i int) string { return strings.Repeat("½", i) },
			func(i int) string { return strings.Repeat("1⁄2", i) },
			dm.KD,
		},
		{
			func(i int) string { return strings.Repeat("ế", i) + "a" },
			func(i int) string { return strings.Repeat("ế", i) + "a" },
			dm.CD,
		},
		{
			func(i int) string { return strings.Repeat("ḍ̇", i) },
			func(i int) string { return strings.Repeat("ḍ̇", i) },
			dm.CD,
		},
	}

	counts := []int{0, 1, 2, 3, 63, 64, 65, 511, 512, 513, 4095, 4096, 4097}

	for j, r := range rows {
		for _, i := range counts {
			input := r.input(i)
			expected := r.expected(i)

			rdr := transform.NewReader(strings.NewReader(input), r.norm.Transformer())
			result, err := io.ReadAll(rdr)

			if !assert.Nil(t, err, "test %d with i=%d", j, i) {
				break
			}
			if !assert.Equal(t, expected, string(result),
				"test %d with i=%d\n%x\n%x", j, i, expected, string(result)) {
				break
			}
		}
	}
}
