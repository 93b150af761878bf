package norm

import (
	"github.com/tawesoft/norm/ccc"
	"github.com/tawesoft/norm/dm"
)

// MaxDecomposeLen bounds the recursion depth of a single rune's
// decomposition, across both the Hangul algorithm and dm's mapping tables.
// No real Unicode character comes close to this; it exists so a
// pathological custom Decomposer (see dm.New) can't recurse forever.
const MaxDecomposeLen = 32

// expandDecompose fully decomposes c under d, appending every resulting
// scalar to out. Hangul syllables are expanded algorithmically since dm
// never maps them; everything else recurses through d's one-level mapping
// until nothing further applies.
func expandDecompose(d dm.Decomposer, c rune, out []rune, depth int) []rune {
	if depth >= MaxDecomposeLen {
		return append(out, c)
	}

	if isHangul(c) {
		l, v, t := decomposeHangul(c)
		out = append(out, l, v)
		if t != jamoTFirst {
			out = append(out, t)
		}
		return out
	}

	_, mapping := d.Map(c)
	if len(mapping) == 0 {
		return append(out, c)
	}

	for _, m := range mapping {
		out = expandDecompose(d, m, out, depth+1)
	}
	return out
}

// decomposeString applies d's decomposition to every rune of s, then
// canonically reorders the resulting combining marks with a reBuf. This is
// the shared core of NFD and NFKD: the only difference between them is
// which Decomposer is supplied.
func decomposeString(d dm.Decomposer, s string) ([]rune, error) {
	out := make([]rune, 0, len(s))
	var rb reBuf
	var scratch [4]rune

	for _, c := range s {
		expanded := expandDecompose(d, c, scratch[:0], 0)
		for _, r := range expanded {
			if ccc.Of(r) == 0 {
				out = rb.flush(out)
				out = append(out, r)
				continue
			}
			if rb.n >= ccc.MaxNonStarters {
				return nil, ccc.ErrMaxNonStarters
			}
			rb.insert(r)
		}
	}
	out = rb.flush(out)
	return out, nil
}
