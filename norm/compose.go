package norm

import "github.com/tawesoft/norm/ccc"

// composeRunes applies canonical composition to in, which must already be a
// fully decomposed, canonically ordered sequence (as produced by
// decomposeString): Hangul L/V/T Jamo are recomposed algorithmically via
// jamoBuf, and every other starter absorbs as many of its following
// combining marks as primary composition and the blocking rule allow.
//
// The blocking rule (Unicode D115) says a mark m is blocked from composing
// with the current starter if some earlier mark between them has a CCC
// greater than or equal to m's. Because the input is already sorted
// non-decreasing by CCC, a mark can only be blocked by one of equal class:
// tracking the highest CCC seen among marks that failed to combine with the
// current starter is enough to decide every later mark in the same run.
func composeRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))

	var jamo jamoBuf

	var starter rune
	haveStarter := false
	blockedCCC := -1 // -1 means no mark has failed to combine yet
	var uncombined []rune

	flushStarter := func() {
		if !haveStarter {
			return
		}
		out = append(out, starter)
		out = append(out, uncombined...)
		uncombined = uncombined[:0]
		haveStarter = false
		blockedCCC = -1
	}

	for _, c := range in {
		if isJamo(c) {
			flushStarter()
			out = jamo.step(c, out)
			continue
		}
		if jamo.state != jamoEmpty {
			out = jamo.flush(out)
		}

		cc := int(ccc.Of(c))

		if cc == 0 {
			if haveStarter && blockedCCC == -1 {
				if comp, ok := composePairNoncombining(starter, c); ok {
					starter = comp
					continue
				}
			}
			flushStarter()
			starter, haveStarter = c, true
			continue
		}

		if !haveStarter {
			out = append(out, c)
			continue
		}

		if cc > blockedCCC {
			if comp, ok := composePair(starter, c); ok {
				starter = comp
				continue
			}
		}
		uncombined = append(uncombined, c)
		blockedCCC = cc
	}

	if jamo.state != jamoEmpty {
		out = jamo.flush(out)
	}
	flushStarter()

	return out
}
