package keysym

// Legacy keysym ranges that X servers still report for Cyrillic and Greek
// layouts. Bindings use the Unicode form, so the two are folded together
// by Canonical.
const (
	cyrillicLower = 0x6c0 // KOI8 order, lowercase
	cyrillicUpper = 0x6e0 // KOI8 order, uppercase
	cyrillicEnd   = 0x700
)

// koi8Order lists the Unicode lowercase Cyrillic letters in the order of
// the legacy keysyms 0x6c0..0x6df.
var koi8Order = [32]rune{
	'ю', 'а', 'б', 'ц', 'д', 'е', 'ф', 'г', 'х', 'и', 'й', 'к', 'л', 'м', 'н', 'о',
	'п', 'я', 'р', 'с', 'т', 'у', 'ж', 'в', 'ь', 'ы', 'з', 'ш', 'э', 'щ', 'ч', 'ъ',
}

// Canonical maps a legacy Cyrillic or Greek letter keysym to the keysym
// FromRune gives for the same letter. Other keysyms are returned as is.
func Canonical(s Keysym) Keysym {
	if r, ok := legacyRune(s); ok {
		return unicodeOffset | Keysym(r)
	}
	return s
}

func legacyRune(s Keysym) (rune, bool) {
	switch {
	case s == 0x6a3:
		return 'ё', true
	case s == 0x6b3:
		return 'Ё', true
	case s >= cyrillicLower && s < cyrillicUpper:
		return koi8Order[s-cyrillicLower], true
	case s >= cyrillicUpper && s < cyrillicEnd:
		return koi8Order[s-cyrillicUpper] - 0x20, true
	case s >= 0x7c1 && s <= 0x7d1: // Greek_ALPHA..Greek_RHO
		return rune(s-0x7c1) + 'Α', true
	case s == 0x7d2:
		return 'Σ', true
	case s >= 0x7d4 && s <= 0x7d9: // Greek_TAU..Greek_OMEGA
		return rune(s-0x7d4) + 'Τ', true
	case s >= 0x7e1 && s <= 0x7f1: // Greek_alpha..Greek_rho
		return rune(s-0x7e1) + 'α', true
	case s == 0x7f2:
		return 'σ', true
	case s == 0x7f3:
		return 'ς', true
	case s >= 0x7f4 && s <= 0x7f9: // Greek_tau..Greek_omega
		return rune(s-0x7f4) + 'τ', true
	}
	return 0, false
}
