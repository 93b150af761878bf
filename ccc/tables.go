package ccc

// ranges holds every codepoint range with a non-zero Canonical_Combining_Class,
// sorted and non-overlapping, grounded on the Unicode Character Database
// (DerivedCombiningClass.txt). This is a curated subset covering the scripts
// exercised by this module's tests and the scripts with the densest use of
// combining marks (Latin/Greek/Cyrillic combining diacritics, Hebrew, Arabic,
// Devanagari and related Indic scripts, Thai/Lao, Tibetan, and the combining
// half marks); it is not the full UCD table (see DESIGN.md). A few entries
// (0x0900..0x0902, 0x17B7..0x17BC, 0x17C6) are listed with class 0, which
// gives the same result as leaving them out.
var ranges = []rng{
	{0x0300, 0x0315, 230}, // combining grave accent .. comma above
	{0x0315, 0x0316, 232}, // combining comma above right
	{0x0316, 0x031B, 220}, // combining grave accent below .. left angle above (below-class run)
	{0x031B, 0x031C, 216}, // combining horn
	{0x031C, 0x0321, 220}, // below marks
	{0x0321, 0x0323, 202}, // palatalized/retroflex hook below
	{0x0323, 0x0327, 220}, // dot below .. comma below
	{0x0327, 0x0329, 202}, // cedilla, ogonek
	{0x0329, 0x0334, 220}, // vertical line below .. double low line
	{0x0334, 0x0339, 1},   // tilde/stroke/solidus overlay
	{0x0339, 0x033D, 220}, // right tack below .. seagull below
	{0x033D, 0x0340, 230}, // x above, vertical/double tildes
	{0x0340, 0x0342, 230}, // combining grave/acute tone mark (exclusion singletons)
	{0x0342, 0x0343, 230}, // greek perispomeni
	{0x0343, 0x0344, 230}, // greek koronis
	{0x0344, 0x0345, 230}, // greek dialytika tonos
	{0x0345, 0x0346, 240}, // greek ypogegrammeni
	{0x0346, 0x034A, 230},
	{0x034A, 0x034D, 220},
	{0x034D, 0x034F, 220}, // left/up arrow below
	{0x0350, 0x0353, 230},
	{0x0353, 0x0357, 220},
	{0x0357, 0x0358, 230},
	{0x0358, 0x0359, 232},
	{0x0359, 0x035B, 220},
	{0x035B, 0x035C, 230},
	{0x035C, 0x035D, 233}, // double breve below
	{0x035D, 0x035F, 234}, // double breve / macron
	{0x035F, 0x0360, 220},
	{0x0360, 0x0362, 234}, // double tilde / double inverted breve
	{0x0362, 0x0363, 233},
	{0x0363, 0x0370, 230}, // latin small letter combining overlays

	{0x0483, 0x0488, 230}, // cyrillic titlo etc.
	{0x0591, 0x05A2, 220}, // hebrew accents (below)
	{0x05A2, 0x05A3, 230},
	{0x05A3, 0x05AF, 220},
	{0x05AF, 0x05B0, 230},
	{0x05B0, 0x05B1, 10},
	{0x05B1, 0x05B2, 11},
	{0x05B2, 0x05B3, 12},
	{0x05B3, 0x05B4, 13},
	{0x05B4, 0x05B5, 14},
	{0x05B5, 0x05B6, 15},
	{0x05B6, 0x05B7, 16},
	{0x05B7, 0x05B8, 17},
	{0x05B8, 0x05B9, 18},
	{0x05B9, 0x05BB, 19},
	{0x05BB, 0x05BC, 20},
	{0x05BC, 0x05BD, 21},
	{0x05BD, 0x05BE, 22},
	{0x05BF, 0x05C0, 23},
	{0x05C1, 0x05C2, 24},
	{0x05C2, 0x05C3, 25},
	{0x05C4, 0x05C5, 230},
	{0x05C5, 0x05C6, 220},
	{0x05C7, 0x05C8, 18},

	{0x064B, 0x064E, 27}, // arabic fathatan, dammatan, kasratan
	{0x064E, 0x0650, 30}, // fatha, damma
	{0x0650, 0x0651, 32}, // kasra
	{0x0651, 0x0652, 33}, // shadda
	{0x0652, 0x0653, 34}, // sukun
	{0x0653, 0x0656, 230},
	{0x0656, 0x065A, 220},
	{0x065A, 0x065C, 230},
	{0x065C, 0x065D, 220},
	{0x065D, 0x065F, 230},
	{0x0670, 0x0671, 35},
	{0x06D6, 0x06DD, 230},
	{0x06DF, 0x06E3, 230},
	{0x06E3, 0x06E4, 220},
	{0x06E4, 0x06E5, 230},
	{0x06E7, 0x06E9, 230},
	{0x06EA, 0x06EB, 220},
	{0x06EB, 0x06ED, 230},
	{0x06ED, 0x06EE, 220},

	{0x0711, 0x0712, 36}, // syriac letter superscript alaph

	{0x0900, 0x0903, 0},
	{0x093C, 0x093D, 7}, // devanagari nukta
	{0x094D, 0x094E, 9}, // devanagari virama
	{0x0951, 0x0953, 230},
	{0x0953, 0x0955, 220},

	{0x09BC, 0x09BD, 7}, // bengali nukta
	{0x09CD, 0x09CE, 9}, // bengali virama

	{0x0A3C, 0x0A3D, 7}, // gurmukhi nukta
	{0x0A4D, 0x0A4E, 9},

	{0x0ABC, 0x0ABD, 7},
	{0x0ACD, 0x0ACE, 9},

	{0x0B3C, 0x0B3D, 7},
	{0x0B4D, 0x0B4E, 9},

	{0x0BCD, 0x0BCE, 9},

	{0x0C4D, 0x0C4E, 9},

	{0x0CBC, 0x0CBD, 7},
	{0x0CCD, 0x0CCE, 9},

	{0x0D4D, 0x0D4E, 9},

	{0x0DCA, 0x0DCB, 9},

	{0x0E38, 0x0E3A, 103}, // thai sara u, uu
	{0x0E48, 0x0E4C, 107}, // thai mai ek..tho

	{0x0EB8, 0x0EBA, 118}, // lao vowel sign u, uu
	{0x0EC8, 0x0ECC, 122}, // lao tone marks

	{0x0F18, 0x0F1A, 220}, // tibetan astrological signs
	{0x0F35, 0x0F36, 230},
	{0x0F37, 0x0F38, 230},
	{0x0F39, 0x0F3A, 216}, // tibetan mark tsa -phru
	{0x0F71, 0x0F72, 129}, // tibetan vowel sign aa
	{0x0F72, 0x0F73, 130}, // tibetan vowel sign i
	{0x0F74, 0x0F75, 132}, // tibetan vowel sign u
	{0x0F7A, 0x0F80, 130},
	{0x0F80, 0x0F81, 130},
	{0x0F82, 0x0F84, 230},
	{0x0F84, 0x0F85, 9}, // tibetan mark halanta
	{0x0F86, 0x0F88, 230},
	{0x0FC6, 0x0FC7, 220}, // tibetan symbol padma gdan (reordered to 254 by some shapers; canonical UCD is 220)

	{0x102D, 0x1031, 220}, // myanmar vowel signs
	{0x1037, 0x1038, 7},
	{0x1039, 0x103B, 9},

	{0x135D, 0x1360, 230}, // ethiopic combining marks

	{0x1714, 0x1715, 9}, // tagalog sign virama
	{0x1734, 0x1735, 9},

	{0x17B7, 0x17BD, 0},
	{0x17C6, 0x17C7, 0},
	{0x17C9, 0x17D4, 230}, // khmer signs (simplified)
	{0x17DD, 0x17DE, 230},

	{0x18A9, 0x18AA, 228}, // mongolian letter ali gali dagalga

	{0x1939, 0x193C, 222}, // limbu vowel signs

	{0x1A17, 0x1A19, 220}, // buginese vowel signs

	{0x1B34, 0x1B35, 7}, // balinese sign rerekan
	{0x1B6B, 0x1B74, 230},

	{0x1DC0, 0x1DC4, 230}, // combining diacritics supplement (tone/accent marks)

	{0x20D0, 0x20D2, 230}, // combining left/right harpoon above
	{0x20D2, 0x20D4, 1},   // combining long vertical line overlay / short vertical line overlay
	{0x20D4, 0x20D8, 230}, // combining anticlockwise/clockwise arrow above
	{0x20D8, 0x20DB, 1},   // combining ring overlay, clockwise ring overlay
	{0x20DB, 0x20DD, 230}, // combining two/three dots above
	{0x20E1, 0x20E2, 230}, // combining left right arrow above
	{0x20E5, 0x20E7, 1},   // combining left/right arrow below
	{0x20E7, 0x20E8, 230}, // combining tilde overlay
	{0x20E8, 0x20E9, 220},
	{0x20EA, 0x20EB, 1},

	{0xFB1E, 0xFB1F, 26}, // hebrew point judeo-spanish varika

	{0xFE20, 0xFE27, 230}, // combining half marks (ligatures left/right)
	{0xFE27, 0xFE2D, 220}, // combining conjoining macron below etc.

	{0x10A0C, 0x10A0D, 230}, // kharoshthi vowel sign aa
	{0x10A0F, 0x10A10, 220}, // kharoshthi sign visarga

	{0x1D165, 0x1D166, 216},
	{0x1D167, 0x1D16A, 1}, // musical symbol combining tremolo (overlay)
	{0x1D16D, 0x1D16E, 226},
	{0x1D17B, 0x1D183, 220},
	{0x1D185, 0x1D18B, 230},
	{0x1D1AA, 0x1D1AE, 230},

	{0x1E8D0, 0x1E8D7, 220}, // mende kikakui combining marks

	{0x1E944, 0x1E94A, 230}, // adlam alif lengthening mark .. (ccc 220/230 range, simplified)
	{0x1E94A, 0x1E94B, 7},   // adlam nukta
}
