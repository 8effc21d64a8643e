package termo

import (
	"strconv"
	"strings"
)

// ExtensoMode selects the phrasing of NumberInWords.
type ExtensoMode int

const (
	// ExtensoUIF renders the full currency narrative used by the UIF/RS
	// boilerplate: "dois inteiros, e cinco centésimos".
	ExtensoUIF ExtensoMode = iota
	// ExtensoGeral renders bare integer words, joining a decimal part
	// with "vírgula".
	ExtensoGeral
	// ExtensoPercent renders like ExtensoGeral; the caller appends the
	// "por cento" phrasing.
	ExtensoPercent
)

var (
	extensoUnits = []string{
		"", "um", "dois", "três", "quatro", "cinco", "seis", "sete",
		"oito", "nove", "dez", "onze", "doze", "treze", "quatorze",
		"quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	extensoTens = []string{
		"", "dez", "vinte", "trinta", "quarenta", "cinquenta",
		"sessenta", "setenta", "oitenta", "noventa",
	}
	extensoHundreds = []string{
		"", "cento", "duzentos", "trezentos", "quatrocentos",
		"quinhentos", "seiscentos", "setecentos", "oitocentos",
		"novecentos",
	}
	extensoScales = []struct {
		singular string
		plural   string
	}{
		{"", ""},
		{"mil", "mil"},
		{"milhão", "milhões"},
		{"bilhão", "bilhões"},
		{"trilhão", "trilhões"},
	}
)

// belowThousand spells a number in [1, 999].
func belowThousand(n int64) string {
	if n == 100 {
		return "cem"
	}

	var parts []string
	if n >= 100 {
		parts = append(parts, extensoHundreds[n/100])
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, extensoTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, extensoUnits[n])
	}
	return strings.Join(parts, " e ")
}

// cardinal spells a non-negative integer in Portuguese words, joining
// thousand groups with ", " and preceding the final group with " e "
// when it reads as a continuation (below one hundred or a round
// hundred).
func cardinal(n int64) string {
	if n == 0 {
		return "zero"
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var out string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}

		scale := extensoScales[i]
		var word string
		switch {
		case i == 0:
			word = belowThousand(g)
		case i == 1 && g == 1:
			// "mil", never "um mil".
			word = scale.singular
		case g == 1:
			word = "um " + scale.singular
		default:
			word = belowThousand(g) + " " + scale.plural
		}

		if out == "" {
			out = word
			continue
		}

		// Remaining value from this group down decides the connector:
		// "e" reads as a continuation for small or round remainders.
		var rem int64
		for j := i; j >= 0; j-- {
			rem = rem*1000 + groups[j]
		}
		if rem < 100 || rem%100 == 0 {
			out += " e " + word
		} else {
			out += ", " + word
		}
	}
	return out
}

// NumberInWords converts a numeric string to Portuguese words. The
// value goes through Currency first, so it accepts anything the
// currency normalizer accepts. Conversion failures fall back to the
// original string.
func (l *Locale) NumberInWords(num string, mode ExtensoMode) string {
	formatted := l.Currency(num)

	intPart, decPart, found := strings.Cut(formatted, l.DecimalSep)
	if !found {
		return num
	}

	inteiro, err := strconv.ParseInt(strings.ReplaceAll(intPart, l.ThousandsSep, ""), 10, 64)
	if err != nil || inteiro < 0 {
		return num
	}
	dec, err := strconv.ParseInt(decPart, 10, 64)
	if err != nil || dec < 0 {
		return num
	}

	extI := cardinal(inteiro)

	if mode == ExtensoUIF {
		phrase := extI + " " + pluralize(inteiro, "inteiro", "inteiros")
		if dec != 0 {
			phrase += ", e " + cardinal(dec) + " " + pluralize(dec, "centésimo", "centésimos")
		}
		return phrase
	}

	if dec != 0 {
		return extI + " vírgula " + cardinal(dec)
	}
	return extI
}

func pluralize(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
