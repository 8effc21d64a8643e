package termo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale carries the numeric and date conventions used by the
// formatters. Nothing is process-global: callers that need different
// conventions pass their own Locale.
type Locale struct {
	Tag          language.Tag
	Months       [12]string
	ThousandsSep string
	DecimalSep   string
}

// BrazilianPortuguese is the default locale of the adjustment terms.
var BrazilianPortuguese = &Locale{
	Tag: language.BrazilianPortuguese,
	Months: [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	ThousandsSep: ".",
	DecimalSep:   ",",
}

// Currency parses a locale-formatted decimal ("1.234.567,89"), rounds
// it to two decimal places and re-renders it with the same convention.
// Unparsable input is returned unchanged; a partially filled form must
// never abort a generation.
func (l *Locale) Currency(text string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), l.ThousandsSep, "")
	normalized = strings.ReplaceAll(normalized, l.DecimalSep, ".")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return text
	}
	// UIF amounts round half-even.
	return l.renderDecimal(d.RoundBank(2))
}

func (l *Locale) renderDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(l.ThousandsSep)
		}
		sb.WriteRune(digit)
	}
	sb.WriteString(l.DecimalSep)
	sb.WriteString(fracPart)
	return sb.String()
}

// Upper upper-cases a string with the locale's casing rules.
func (l *Locale) Upper(s string) string {
	return cases.Upper(l.Tag).String(s)
}

func (l *Locale) titleCase(s string) string {
	return cases.Title(l.Tag).String(s)
}

// IDKind selects the national identifier layout.
type IDKind int

const (
	IDKindCPF  IDKind = iota // 11 digits, XXX.XXX.XXX-XX
	IDKindCNPJ               // 14 digits, XX.XXX.XXX/XXXX-XX
)

var nonDigits = regexp.MustCompile(`\D`)

// FormatNationalID strips non-digit characters and inserts the fixed
// separators of the requested identifier kind. When the digit count
// does not match the kind, the input is returned unchanged.
func FormatNationalID(s string, kind IDKind) string {
	d := nonDigits.ReplaceAllString(s, "")
	switch kind {
	case IDKindCPF:
		if len(d) != 11 {
			return s
		}
		return fmt.Sprintf("%s.%s.%s-%s", d[:3], d[3:6], d[6:9], d[9:])
	case IDKindCNPJ:
		if len(d) != 14 {
			return s
		}
		return fmt.Sprintf("%s.%s.%s/%s-%s", d[:2], d[2:5], d[5:8], d[8:12], d[12:])
	}
	return s
}

// FormatCPF formats an 11-digit CPF.
func FormatCPF(s string) string {
	return FormatNationalID(s, IDKindCPF)
}

// FormatCNPJ formats a 14-digit CNPJ.
func FormatCNPJ(s string) string {
	return FormatNationalID(s, IDKindCNPJ)
}

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2.1.2006",
	"2006-01-02",
}

// ParseDate parses a day-first date string (DD/MM/YYYY, DD.MM.YYYY or
// YYYY-MM-DD, with a loose day-first fallback). It reports false when
// the value cannot be parsed.
func (l *Locale) ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseDayFirst(s)
}

// parseDayFirst is the generic fallback: three numeric fields split by
// /, ., - or space, interpreted day-first unless the first field is a
// four-digit year.
func parseDayFirst(s string) (time.Time, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == '-' || r == ' '
	})
	if len(fields) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if len(fields[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// LongDate renders "5 de maio de 2025", or "Maio/2025" when
// monthYearOnly is set. The zero time renders as an empty string.
func (l *Locale) LongDate(t time.Time, monthYearOnly bool) string {
	if t.IsZero() {
		return ""
	}
	month := l.Months[int(t.Month())-1]
	if monthYearOnly {
		return fmt.Sprintf("%s/%d", l.titleCase(month), t.Year())
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), month, t.Year())
}

// DottedDate renders "DD.MM.YYYY" with zero-padded day and month. The
// zero time renders as an empty string.
func (l *Locale) DottedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}
