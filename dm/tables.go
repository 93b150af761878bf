package dm

import "sort"

// dti is one entry of the decomposition index: a codepoint, its mapping
// type, and the (offset, length) slice of dms holding its one-level
// mapping. This is the same three-field shape
// (codepoint, type, mapping-into-a-shared-pool) used by the real generator
// at internal/unicode/gen-13.0.0/dm/gen.go, except that gen.go packs those
// three fields (plus a decomposition-range length) into 47 bits of a
// []byte blob loaded via go:embed from a build step that downloads and
// parses the UCD archive. That pipeline needs network access this module
// doesn't have, so dtis/dms are instead built once, at package
// initialization, from the literal rawMappings table below (see
// DESIGN.md).
type dti struct {
	codepoint rune
	dt        Type
	dmi       uint16
	dml       uint8
}

var dtis []dti
var dms []rune

type rawMapping struct {
	cp rune
	dt Type
	dm []rune
}

// rawMappings is a curated subset of the Unicode decomposition mappings:
// the Latin-1 Supplement and Latin Extended-A precomposed Latin letters,
// a set of precomposed Greek and Cyrillic letters, the handful of
// canonical singleton equivalences (e.g. the angstrom and ohm signs), and
// a sample of compatibility mappings (superscripts/subscripts, vulgar
// fractions, the "fi"/"fl"-style ligatures, fullwidth-adjacent no-break
// spaces, and a few circled/Roman-numeral compatibility characters). It is
// not the full UCD UnicodeData.txt decomposition column (see DESIGN.md).
var rawMappings = []rawMapping{
	// Latin-1 Supplement
	{0x00C0, Canonical, []rune{0x0041, 0x0300}},
	{0x00C1, Canonical, []rune{0x0041, 0x0301}},
	{0x00C2, Canonical, []rune{0x0041, 0x0302}},
	{0x00C3, Canonical, []rune{0x0041, 0x0303}},
	{0x00C4, Canonical, []rune{0x0041, 0x0308}},
	{0x00C5, Canonical, []rune{0x0041, 0x030A}},
	{0x00C7, Canonical, []rune{0x0043, 0x0327}},
	{0x00C8, Canonical, []rune{0x0045, 0x0300}},
	{0x00C9, Canonical, []rune{0x0045, 0x0301}},
	{0x00CA, Canonical, []rune{0x0045, 0x0302}},
	{0x00CB, Canonical, []rune{0x0045, 0x0308}},
	{0x00CC, Canonical, []rune{0x0049, 0x0300}},
	{0x00CD, Canonical, []rune{0x0049, 0x0301}},
	{0x00CE, Canonical, []rune{0x0049, 0x0302}},
	{0x00CF, Canonical, []rune{0x0049, 0x0308}},
	{0x00D1, Canonical, []rune{0x004E, 0x0303}},
	{0x00D2, Canonical, []rune{0x004F, 0x0300}},
	{0x00D3, Canonical, []rune{0x004F, 0x0301}},
	{0x00D4, Canonical, []rune{0x004F, 0x0302}},
	{0x00D5, Canonical, []rune{0x004F, 0x0303}},
	{0x00D6, Canonical, []rune{0x004F, 0x0308}},
	{0x00D9, Canonical, []rune{0x0055, 0x0300}},
	{0x00DA, Canonical, []rune{0x0055, 0x0301}},
	{0x00DB, Canonical, []rune{0x0055, 0x0302}},
	{0x00DC, Canonical, []rune{0x0055, 0x0308}},
	{0x00DD, Canonical, []rune{0x0059, 0x0301}},
	{0x00E0, Canonical, []rune{0x0061, 0x0300}},
	{0x00E1, Canonical, []rune{0x0061, 0x0301}},
	{0x00E2, Canonical, []rune{0x0061, 0x0302}},
	{0x00E3, Canonical, []rune{0x0061, 0x0303}},
	{0x00E4, Canonical, []rune{0x0061, 0x0308}},
	{0x00E5, Canonical, []rune{0x0061, 0x030A}},
	{0x00E7, Canonical, []rune{0x0063, 0x0327}},
	{0x00E8, Canonical, []rune{0x0065, 0x0300}},
	{0x00E9, Canonical, []rune{0x0065, 0x0301}},
	{0x00EA, Canonical, []rune{0x0065, 0x0302}},
	{0x00EB, Canonical, []rune{0x0065, 0x0308}},
	{0x00EC, Canonical, []rune{0x0069, 0x0300}},
	{0x00ED, Canonical, []rune{0x0069, 0x0301}},
	{0x00EE, Canonical, []rune{0x0069, 0x0302}},
	{0x00EF, Canonical, []rune{0x0069, 0x0308}},
	{0x00F1, Canonical, []rune{0x006E, 0x0303}},
	{0x00F2, Canonical, []rune{0x006F, 0x0300}},
	{0x00F3, Canonical, []rune{0x006F, 0x0301}},
	{0x00F4, Canonical, []rune{0x006F, 0x0302}},
	{0x00F5, Canonical, []rune{0x006F, 0x0303}},
	{0x00F6, Canonical, []rune{0x006F, 0x0308}},
	{0x00F9, Canonical, []rune{0x0075, 0x0300}},
	{0x00FA, Canonical, []rune{0x0075, 0x0301}},
	{0x00FB, Canonical, []rune{0x0075, 0x0302}},
	{0x00FC, Canonical, []rune{0x0075, 0x0308}},
	{0x00FD, Canonical, []rune{0x0079, 0x0301}},
	{0x00FF, Canonical, []rune{0x0079, 0x0308}},

	// Latin Extended-A
	{0x0100, Canonical, []rune{0x0041, 0x0304}},
	{0x0101, Canonical, []rune{0x0061, 0x0304}},
	{0x0102, Canonical, []rune{0x0041, 0x0306}},
	{0x0103, Canonical, []rune{0x0061, 0x0306}},
	{0x0104, Canonical, []rune{0x0041, 0x0328}},
	{0x0105, Canonical, []rune{0x0061, 0x0328}},
	{0x0106, Canonical, []rune{0x0043, 0x0301}},
	{0x0107, Canonical, []rune{0x0063, 0x0301}},
	{0x0108, Canonical, []rune{0x0043, 0x0302}},
	{0x0109, Canonical, []rune{0x0063, 0x0302}},
	{0x010A, Canonical, []rune{0x0043, 0x0307}},
	{0x010B, Canonical, []rune{0x0063, 0x0307}},
	{0x010C, Canonical, []rune{0x0043, 0x030C}},
	{0x010D, Canonical, []rune{0x0063, 0x030C}},
	{0x010E, Canonical, []rune{0x0044, 0x030C}},
	{0x010F, Canonical, []rune{0x0064, 0x030C}},
	{0x0112, Canonical, []rune{0x0045, 0x0304}},
	{0x0113, Canonical, []rune{0x0065, 0x0304}},
	{0x0114, Canonical, []rune{0x0045, 0x0306}},
	{0x0115, Canonical, []rune{0x0065, 0x0306}},
	{0x0116, Canonical, []rune{0x0045, 0x0307}},
	{0x0117, Canonical, []rune{0x0065, 0x0307}},
	{0x0118, Canonical, []rune{0x0045, 0x0328}},
	{0x0119, Canonical, []rune{0x0065, 0x0328}},
	{0x011A, Canonical, []rune{0x0045, 0x030C}},
	{0x011B, Canonical, []rune{0x0065, 0x030C}},
	{0x011C, Canonical, []rune{0x0047, 0x0302}},
	{0x011D, Canonical, []rune{0x0067, 0x0302}},
	{0x011E, Canonical, []rune{0x0047, 0x0306}},
	{0x011F, Canonical, []rune{0x0067, 0x0306}},
	{0x0120, Canonical, []rune{0x0047, 0x0307}},
	{0x0121, Canonical, []rune{0x0067, 0x0307}},
	{0x0122, Canonical, []rune{0x0047, 0x0327}},
	{0x0123, Canonical, []rune{0x0067, 0x0327}},
	{0x0124, Canonical, []rune{0x0048, 0x0302}},
	{0x0125, Canonical, []rune{0x0068, 0x0302}},
	{0x0128, Canonical, []rune{0x0049, 0x0303}},
	{0x0129, Canonical, []rune{0x0069, 0x0303}},
	{0x012A, Canonical, []rune{0x0049, 0x0304}},
	{0x012B, Canonical, []rune{0x0069, 0x0304}},
	{0x012C, Canonical, []rune{0x0049, 0x0306}},
	{0x012D, Canonical, []rune{0x0069, 0x0306}},
	{0x012E, Canonical, []rune{0x0049, 0x0328}},
	{0x012F, Canonical, []rune{0x0069, 0x0328}},
	{0x0130, Canonical, []rune{0x0049, 0x0307}},
	{0x0134, Canonical, []rune{0x004A, 0x0302}},
	{0x0135, Canonical, []rune{0x006A, 0x0302}},
	{0x0136, Canonical, []rune{0x004B, 0x0327}},
	{0x0137, Canonical, []rune{0x006B, 0x0327}},
	{0x0139, Canonical, []rune{0x004C, 0x0301}},
	{0x013A, Canonical, []rune{0x006C, 0x0301}},
	{0x013B, Canonical, []rune{0x004C, 0x0327}},
	{0x013C, Canonical, []rune{0x006C, 0x0327}},
	{0x013D, Canonical, []rune{0x004C, 0x030C}},
	{0x013E, Canonical, []rune{0x006C, 0x030C}},
	{0x0143, Canonical, []rune{0x004E, 0x0301}},
	{0x0144, Canonical, []rune{0x006E, 0x0301}},
	{0x0145, Canonical, []rune{0x004E, 0x0327}},
	{0x0146, Canonical, []rune{0x006E, 0x0327}},
	{0x0147, Canonical, []rune{0x004E, 0x030C}},
	{0x0148, Canonical, []rune{0x006E, 0x030C}},
	{0x014C, Canonical, []rune{0x004F, 0x0304}},
	{0x014D, Canonical, []rune{0x006F, 0x0304}},
	{0x014E, Canonical, []rune{0x004F, 0x0306}},
	{0x014F, Canonical, []rune{0x006F, 0x0306}},
	{0x0150, Canonical, []rune{0x004F, 0x030B}},
	{0x0151, Canonical, []rune{0x006F, 0x030B}},
	{0x0154, Canonical, []rune{0x0052, 0x0301}},
	{0x0155, Canonical, []rune{0x0072, 0x0301}},
	{0x0156, Canonical, []rune{0x0052, 0x0327}},
	{0x0157, Canonical, []rune{0x0072, 0x0327}},
	{0x0158, Canonical, []rune{0x0052, 0x030C}},
	{0x0159, Canonical, []rune{0x0072, 0x030C}},
	{0x015A, Canonical, []rune{0x0053, 0x0301}},
	{0x015B, Canonical, []rune{0x0073, 0x0301}},
	{0x015C, Canonical, []rune{0x0053, 0x0302}},
	{0x015D, Canonical, []rune{0x0073, 0x0302}},
	{0x015E, Canonical, []rune{0x0053, 0x0327}},
	{0x015F, Canonical, []rune{0x0073, 0x0327}},
	{0x0160, Canonical, []rune{0x0053, 0x030C}},
	{0x0161, Canonical, []rune{0x0073, 0x030C}},
	{0x0162, Canonical, []rune{0x0054, 0x0327}},
	{0x0163, Canonical, []rune{0x0074, 0x0327}},
	{0x0164, Canonical, []rune{0x0054, 0x030C}},
	{0x0165, Canonical, []rune{0x0074, 0x030C}},
	{0x0168, Canonical, []rune{0x0055, 0x0303}},
	{0x0169, Canonical, []rune{0x0075, 0x0303}},
	{0x016A, Canonical, []rune{0x0055, 0x0304}},
	{0x016B, Canonical, []rune{0x0075, 0x0304}},
	{0x016C, Canonical, []rune{0x0055, 0x0306}},
	{0x016D, Canonical, []rune{0x0075, 0x0306}},
	{0x016E, Canonical, []rune{0x0055, 0x030A}},
	{0x016F, Canonical, []rune{0x0075, 0x030A}},
	{0x0170, Canonical, []rune{0x0055, 0x030B}},
	{0x0171, Canonical, []rune{0x0075, 0x030B}},
	{0x0172, Canonical, []rune{0x0055, 0x0328}},
	{0x0173, Canonical, []rune{0x0075, 0x0328}},
	{0x0174, Canonical, []rune{0x0057, 0x0302}},
	{0x0175, Canonical, []rune{0x0077, 0x0302}},
	{0x0176, Canonical, []rune{0x0059, 0x0302}},
	{0x0177, Canonical, []rune{0x0079, 0x0302}},
	{0x0178, Canonical, []rune{0x0059, 0x0308}},
	{0x0179, Canonical, []rune{0x005A, 0x0301}},
	{0x017A, Canonical, []rune{0x007A, 0x0301}},
	{0x017B, Canonical, []rune{0x005A, 0x0307}},
	{0x017C, Canonical, []rune{0x007A, 0x0307}},
	{0x017D, Canonical, []rune{0x005A, 0x030C}},
	{0x017E, Canonical, []rune{0x007A, 0x030C}},

	// Latin Extended Additional (used by the S2/S3 conformance scenarios)
	{0x1E0A, Canonical, []rune{0x0044, 0x0307}},
	{0x1E0B, Canonical, []rune{0x0064, 0x0307}},
	{0x1E0C, Canonical, []rune{0x0044, 0x0323}},
	{0x1E0D, Canonical, []rune{0x0064, 0x0323}},

	// Vietnamese, doubly-accented Latin: decomposes recursively through
	// an already-tabulated precomposed letter, exercising flattenRecursive.
	{0x1EBF, Canonical, []rune{0x00EA, 0x0301}},

	// Greek
	{0x0386, Canonical, []rune{0x0391, 0x0301}},
	{0x0388, Canonical, []rune{0x0395, 0x0301}},
	{0x0389, Canonical, []rune{0x0397, 0x0301}},
	{0x038A, Canonical, []rune{0x0399, 0x0301}},
	{0x038C, Canonical, []rune{0x039F, 0x0301}},
	{0x038E, Canonical, []rune{0x03A5, 0x0301}},
	{0x038F, Canonical, []rune{0x03A9, 0x0301}},
	{0x0390, Canonical, []rune{0x03CA, 0x0301}},
	{0x03AA, Canonical, []rune{0x0399, 0x0308}},
	{0x03AB, Canonical, []rune{0x03A5, 0x0308}},
	{0x03AC, Canonical, []rune{0x03B1, 0x0301}},
	{0x03AD, Canonical, []rune{0x03B5, 0x0301}},
	{0x03AE, Canonical, []rune{0x03B7, 0x0301}},
	{0x03AF, Canonical, []rune{0x03B9, 0x0301}},
	{0x03B0, Canonical, []rune{0x03CB, 0x0301}},
	{0x03CA, Canonical, []rune{0x03B9, 0x0308}},
	{0x03CB, Canonical, []rune{0x03C5, 0x0308}},
	{0x03CC, Canonical, []rune{0x03BF, 0x0301}},
	{0x03CD, Canonical, []rune{0x03C5, 0x0301}},
	{0x03CE, Canonical, []rune{0x03C9, 0x0301}},

	// Canonical singleton equivalences
	{0x2126, Canonical, []rune{0x03A9}}, // OHM SIGN -> GREEK CAPITAL LETTER OMEGA
	{0x212A, Canonical, []rune{0x004B}}, // KELVIN SIGN -> LATIN CAPITAL LETTER K
	{0x212B, Canonical, []rune{0x00C5}}, // ANGSTROM SIGN -> LATIN CAPITAL LETTER A WITH RING ABOVE
	{0x0340, Canonical, []rune{0x0300}}, // COMBINING GRAVE TONE MARK -> COMBINING GRAVE ACCENT
	{0x0341, Canonical, []rune{0x0301}}, // COMBINING ACUTE TONE MARK -> COMBINING ACUTE ACCENT
	{0x0343, Canonical, []rune{0x0313}}, // COMBINING GREEK KORONIS -> COMBINING COMMA ABOVE
	{0x0344, Canonical, []rune{0x0308, 0x0301}}, // COMBINING GREEK DIALYTIKA TONOS (full composition exclusion)

	// Cyrillic
	{0x0400, Canonical, []rune{0x0415, 0x0300}},
	{0x0401, Canonical, []rune{0x0415, 0x0308}},
	{0x0403, Canonical, []rune{0x0413, 0x0301}},
	{0x0407, Canonical, []rune{0x0406, 0x0308}},
	{0x040C, Canonical, []rune{0x041A, 0x0301}},
	{0x040D, Canonical, []rune{0x0418, 0x0300}},
	{0x040E, Canonical, []rune{0x0423, 0x0306}},
	{0x0419, Canonical, []rune{0x0418, 0x0306}},
	{0x0439, Canonical, []rune{0x0438, 0x0306}},
	{0x0450, Canonical, []rune{0x0435, 0x0300}},
	{0x0451, Canonical, []rune{0x0435, 0x0308}},
	{0x0453, Canonical, []rune{0x0433, 0x0301}},
	{0x0457, Canonical, []rune{0x0456, 0x0308}},
	{0x045C, Canonical, []rune{0x043A, 0x0301}},
	{0x045D, Canonical, []rune{0x0438, 0x0300}},
	{0x045E, Canonical, []rune{0x0443, 0x0306}},

	// Compatibility: superscripts/subscripts
	{0x00AA, Super, []rune{0x0061}},
	{0x00B2, Super, []rune{0x0032}},
	{0x00B3, Super, []rune{0x0033}},
	{0x00B9, Super, []rune{0x0031}},
	{0x00BA, Super, []rune{0x006F}},
	{0x2070, Super, []rune{0x0030}},
	{0x2074, Super, []rune{0x0034}},
	{0x2075, Super, []rune{0x0035}},
	{0x2076, Super, []rune{0x0036}},
	{0x2077, Super, []rune{0x0037}},
	{0x2078, Super, []rune{0x0038}},
	{0x2079, Super, []rune{0x0039}},
	{0x207A, Super, []rune{0x002B}},
	{0x207B, Super, []rune{0x2212}},
	{0x207C, Super, []rune{0x003D}},
	{0x207D, Super, []rune{0x0028}},
	{0x207E, Super, []rune{0x0029}},
	{0x207F, Super, []rune{0x006E}},
	{0x2080, Sub, []rune{0x0030}},
	{0x2081, Sub, []rune{0x0031}},
	{0x2082, Sub, []rune{0x0032}},
	{0x2083, Sub, []rune{0x0033}},
	{0x2084, Sub, []rune{0x0034}},
	{0x2085, Sub, []rune{0x0035}},
	{0x2086, Sub, []rune{0x0036}},
	{0x2087, Sub, []rune{0x0037}},
	{0x2088, Sub, []rune{0x0038}},
	{0x2089, Sub, []rune{0x0039}},
	{0x208A, Sub, []rune{0x002B}},
	{0x208B, Sub, []rune{0x2212}},
	{0x208C, Sub, []rune{0x003D}},
	{0x208D, Sub, []rune{0x0028}},
	{0x208E, Sub, []rune{0x0029}},

	// Compatibility: vulgar fractions
	{0x00BC, Fraction, []rune{0x0031, 0x2044, 0x0034}},
	{0x00BD, Fraction, []rune{0x0031, 0x2044, 0x0032}},
	{0x00BE, Fraction, []rune{0x0033, 0x2044, 0x0034}},

	// Compatibility: ligatures
	{0xFB00, Compat, []rune{0x0066, 0x0066}},
	{0xFB01, Compat, []rune{0x0066, 0x0069}},
	{0xFB02, Compat, []rune{0x0066, 0x006C}},
	{0xFB03, Compat, []rune{0x0066, 0x0066, 0x0069}},
	{0xFB04, Compat, []rune{0x0066, 0x0066, 0x006C}},
	{0xFB05, Compat, []rune{0x017F, 0x0074}},
	{0xFB06, Compat, []rune{0x0073, 0x0074}},

	// Compatibility: no-break spaces
	{0x00A0, NoBreak, []rune{0x0020}},
	{0x2007, NoBreak, []rune{0x0020}},
	{0x202F, NoBreak, []rune{0x0020}},
	{0x2011, NoBreak, []rune{0x2010}},

	// Compatibility: a sample of circled digits and Roman numerals
	{0x2460, Encircled, []rune{0x0031}},
	{0x2461, Encircled, []rune{0x0032}},
	{0x2462, Encircled, []rune{0x0033}},
	{0x2160, Compat, []rune{0x0049}},
	{0x2161, Compat, []rune{0x0049, 0x0049}},
	{0x2170, Compat, []rune{0x0069}},
	{0x2171, Compat, []rune{0x0069, 0x0069}},
}

func init() {
	sort.Slice(rawMappings, func(i, j int) bool {
		return rawMappings[i].cp < rawMappings[j].cp
	})

	dtis = make([]dti, len(rawMappings))
	dms = make([]rune, 0, len(rawMappings)*2)

	for i, m := range rawMappings {
		if len(m.dm) > 0xFF {
			panic("dm: mapping too long to pack into dml")
		}
		dtis[i] = dti{
			codepoint: m.cp,
			dt:        m.dt,
			dmi:       uint16(len(dms)),
			dml:       uint8(len(m.dm)),
		}
		dms = append(dms, m.dm...)
	}
}
