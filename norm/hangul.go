package norm

// Hangul syllables and their conjoining Jamo decompose and recompose
// algorithmically rather than through a table, following the formula in
// Unicode Standard Annex #15, section 16 (Hangul Algorithm, D117-D124).

const (
	hangulFirst = 0xAC00 // sBase
	jamoLFirst  = 0x1100 // LBase
	jamoVFirst  = 0x1161 // VBase
	jamoTFirst  = 0x11A7 // TBase; Tindex 0 means "no trailing T"

	jamoLCount  = 19
	jamoVCount  = 21
	jamoTCount  = 28
	jamoNCount  = jamoVCount * jamoTCount // 588
	hangulCount = jamoLCount * jamoNCount // 11172
)

// isHangul reports whether c is a precomposed Hangul syllable.
func isHangul(c rune) bool {
	return c >= hangulFirst && c < hangulFirst+hangulCount
}

// isHangulLV reports whether c is a Hangul syllable with no trailing T.
func isHangulLV(c rune) bool {
	return isHangul(c) && (c-hangulFirst)%jamoTCount == 0
}

// isJamo reports whether c is a conjoining Jamo (L, V, or T).
func isJamo(c rune) bool {
	return jamoLIndex(c) >= 0 || jamoVIndex(c) >= 0 || jamoTIndex(c) >= 0
}

// jamoLIndex returns the L index of c, or -1 if c is not a conjoining L.
func jamoLIndex(c rune) int {
	if c >= jamoLFirst && c < jamoLFirst+jamoLCount {
		return int(c - jamoLFirst)
	}
	return -1
}

// jamoVIndex returns the V index of c, or -1 if c is not a conjoining V.
func jamoVIndex(c rune) int {
	if c >= jamoVFirst && c < jamoVFirst+jamoVCount {
		return int(c - jamoVFirst)
	}
	return -1
}

// jamoTIndex returns the T index of c (always >= 1, since index 0 means "no
// T" and is not itself a conjoining Jamo), or -1 if c is not a conjoining T.
func jamoTIndex(c rune) int {
	if c > jamoTFirst && c < jamoTFirst+jamoTCount {
		return int(c - jamoTFirst)
	}
	return -1
}

// decomposeHangul splits a precomposed Hangul syllable into its L, V, and T
// components. t equals jamoTFirst when the syllable has no trailing T.
func decomposeHangul(c rune) (l, v, t rune) {
	s := c - hangulFirst
	l = jamoLFirst + s/jamoNCount
	v = jamoVFirst + (s%jamoNCount)/jamoTCount
	t = jamoTFirst + s%jamoTCount
	return l, v, t
}

// composeHangulLV algorithmically composes an L and a V Jamo into an LV
// syllable (a Hangul syllable with no trailing T).
func composeHangulLV(li, vi int) rune {
	return hangulFirst + rune(li*jamoNCount+vi*jamoTCount)
}

// composeHangulLVT composes an LV syllable with a trailing T Jamo index.
func composeHangulLVT(lv rune, ti int) rune {
	return lv + rune(ti)
}
