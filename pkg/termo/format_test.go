package termo

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	loc := BrazilianPortuguese

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already formatted", "1.234.567,89", "1.234.567,89"},
		{"no thousands separators", "1234567,89", "1.234.567,89"},
		{"integer", "1000", "1.000,00"},
		{"small value", "5,5", "5,50"},
		{"rounds half to even down", "62299,925", "62.299,92"},
		{"rounds half to even up", "10,155", "10,16"},
		{"rounds plain", "1,239", "1,24"},
		{"negative", "-1234,5", "-1.234,50"},
		{"zero", "0", "0,00"},
		{"surrounding spaces", " 123,4 ", "123,40"},
		{"unparsable stays unchanged", "abc", "abc"},
		{"empty stays unchanged", "", ""},
		{"mixed garbage stays unchanged", "12a34", "12a34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loc.Currency(tt.input); got != tt.want {
				t.Errorf("Currency(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  IDKind
		want  string
	}{
		{"bare cpf digits", "12345678901", IDKindCPF, "123.456.789-01"},
		{"cpf already masked", "123.456.789-01", IDKindCPF, "123.456.789-01"},
		{"cpf with stray spaces", " 123 456 789 01 ", IDKindCPF, "123.456.789-01"},
		{"cpf wrong length unchanged", "1234567890", IDKindCPF, "1234567890"},
		{"cpf empty unchanged", "", IDKindCPF, ""},
		{"bare cnpj digits", "12345678000190", IDKindCNPJ, "12.345.678/0001-90"},
		{"cnpj already masked", "12.345.678/0001-90", IDKindCNPJ, "12.345.678/0001-90"},
		{"cnpj wrong length unchanged", "123456780001", IDKindCNPJ, "123456780001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNationalID(tt.input, tt.kind); got != tt.want {
				t.Errorf("FormatNationalID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	loc := BrazilianPortuguese

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"slash day-first", "05/05/2025", date(2025, 5, 5), true},
		{"slash no padding", "5/5/2025", date(2025, 5, 5), true},
		{"dotted", "03.09.2024", date(2024, 9, 3), true},
		{"iso", "2024-09-03", date(2024, 9, 3), true},
		{"hyphen day-first", "03-09-2024", date(2024, 9, 3), true},
		{"space separated", "3 9 2024", date(2024, 9, 3), true},
		{"two-digit year 20xx", "01/02/25", date(2025, 2, 1), true},
		{"two-digit year 19xx", "01/02/85", date(1985, 2, 1), true},
		{"impossible day", "31/02/2024", time.Time{}, false},
		{"month out of range", "05/13/2024", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"free text", "amanhã", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := loc.ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLongDate(t *testing.T) {
	loc := BrazilianPortuguese

	if got := loc.LongDate(date(2025, 5, 5), false); got != "5 de maio de 2025" {
		t.Errorf("LongDate full = %q", got)
	}
	if got := loc.LongDate(date(2025, 5, 5), true); got != "Maio/2025" {
		t.Errorf("LongDate month/year = %q", got)
	}
	if got := loc.LongDate(time.Time{}, false); got != "" {
		t.Errorf("LongDate zero time = %q, want empty", got)
	}
	if got := loc.LongDate(date(2030, 3, 1), true); got != "Março/2030" {
		t.Errorf("LongDate accented month = %q", got)
	}
}

func TestDottedDate(t *testing.T) {
	loc := BrazilianPortuguese

	if got := loc.DottedDate(date(2024, 9, 3)); got != "03.09.2024" {
		t.Errorf("DottedDate = %q", got)
	}
	if got := loc.DottedDate(time.Time{}); got != "" {
		t.Errorf("DottedDate zero time = %q, want empty", got)
	}
}

func TestUpper(t *testing.T) {
	loc := BrazilianPortuguese

	if got := loc.Upper("Calçados São João Ltda"); got != "CALÇADOS SÃO JOÃO LTDA" {
		t.Errorf("Upper = %q", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
