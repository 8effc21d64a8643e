package termo

import "testing"

func TestCardinal(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "um"},
		{16, "dezesseis"},
		{20, "vinte"},
		{21, "vinte e um"},
		{100, "cem"},
		{101, "cento e um"},
		{111, "cento e onze"},
		{200, "duzentos"},
		{999, "novecentos e noventa e nove"},
		{1000, "mil"},
		{1001, "mil e um"},
		{1100, "mil e cem"},
		{1234, "mil, duzentos e trinta e quatro"},
		{2000, "dois mil"},
		{62299, "sessenta e dois mil, duzentos e noventa e nove"},
		{100000, "cem mil"},
		{239509, "duzentos e trinta e nove mil, quinhentos e nove"},
		{693224, "seiscentos e noventa e três mil, duzentos e vinte e quatro"},
		{1000000, "um milhão"},
		{2000000, "dois milhões"},
		{2005000, "dois milhões e cinco mil"},
		{1000001, "um milhão e um"},
		{3214001, "três milhões, duzentos e quatorze mil e um"},
		{1000000000, "um bilhão"},
	}

	for _, tt := range tests {
		if got := cardinal(tt.n); got != tt.want {
			t.Errorf("cardinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumberInWordsUIF(t *testing.T) {
	loc := BrazilianPortuguese

	tests := []struct {
		input string
		want  string
	}{
		{"1,00", "um inteiro"},
		{"2,00", "dois inteiros"},
		{"2,05", "dois inteiros, e cinco centésimos"},
		{"0,01", "zero inteiros, e um centésimo"},
		{
			"693224,32",
			"seiscentos e noventa e três mil, duzentos e vinte e quatro inteiros, e trinta e dois centésimos",
		},
		{
			"62.299,92",
			"sessenta e dois mil, duzentos e noventa e nove inteiros, e noventa e dois centésimos",
		},
	}

	for _, tt := range tests {
		if got := loc.NumberInWords(tt.input, ExtensoUIF); got != tt.want {
			t.Errorf("NumberInWords(%q, UIF) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNumberInWordsGeral(t *testing.T) {
	loc := BrazilianPortuguese

	tests := []struct {
		input string
		want  string
	}{
		{"60", "sessenta"},
		{"297", "duzentos e noventa e sete"},
		{"34,55", "trinta e quatro vírgula cinquenta e cinco"},
		{"100,00", "cem"},
	}

	for _, tt := range tests {
		if got := loc.NumberInWords(tt.input, ExtensoGeral); got != tt.want {
			t.Errorf("NumberInWords(%q, Geral) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNumberInWordsFallback(t *testing.T) {
	loc := BrazilianPortuguese

	// Unparsable input falls back to the original string so a partially
	// filled form still produces a document.
	for _, input := range []string{"abc", "", "x1y2"} {
		if got := loc.NumberInWords(input, ExtensoGeral); got != input {
			t.Errorf("NumberInWords(%q) = %q, want input back", input, got)
		}
	}
}
