package snapshot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks after NFD decomposition, e.g.
// "PATOLOGÍA" -> "PATOLOGIA".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName uppercases, strips accents, drops anything that isn't a
// letter or space, and collapses runs of whitespace.
func NormalizeName(name string) string {
	decomposed, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		decomposed = name
	}
	upper := strings.ToUpper(decomposed)

	var b strings.Builder
	lastWasSpace := false
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if !lastWasSpace && b.Len() > 0 {
				b.WriteRune(' ')
			}
			lastWasSpace = true
		default:
			// drop
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeRUT keeps digits and K/k, uppercases, and strips leading zeros.
// A "SIN-RUT" literal or anything that reduces to nothing normalizes to "".
func NormalizeRUT(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "SIN-RUT" || upper == "SIN RUT" {
		return ""
	}
	var b strings.Builder
	for _, r := range upper {
		if (r >= '0' && r <= '9') || r == 'K' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimLeft(b.String(), "0")
	return cleaned
}

// NormalizeBedType collapses known variants to a closed-set token.
func NormalizeBedType(raw string) BedType {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case upper == "":
		return BedTypeIndefinido
	case upper == "C.M.A" || upper == "C.M.A." || strings.Contains(upper, "MAYOR AMBULATORIA"):
		return BedTypeCMA
	case upper == "MEDIO" || upper == "CAMA MEDIA":
		return BedTypeMedia
	case upper == string(BedTypeMedia), upper == string(BedTypeUTI), upper == string(BedTypeUCI),
		upper == string(BedTypeUPC), upper == string(BedTypeCMA), upper == string(BedTypePensionado),
		upper == string(BedTypeCirugia), upper == string(BedTypeMaternidad), upper == string(BedTypePediatria):
		return BedType(upper)
	default:
		return BedType(upper)
	}
}

// ParseUPCFlag determines the critical-care flag for a day from the UPC
// column's raw cell text.
func ParseUPCFlag(raw string) bool {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "SI" || upper == "X" {
		return true
	}
	return strings.Contains(upper, "UPC") || strings.Contains(upper, "UCI") || strings.Contains(upper, "UTI")
}

// IsBlockedPlaceholder reports whether a normalized name denotes a bed
// blockage/isolation placeholder row rather than a real patient.
func IsBlockedPlaceholder(normalizedName string) bool {
	if strings.HasPrefix(normalizedName, "BLOQUEO") {
		return true
	}
	return strings.Contains(normalizedName, "AISLAMIENTO")
}
