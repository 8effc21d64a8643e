package termo

import (
	"strings"
	"testing"
)

func fullTermoData() TermoData {
	return TermoData{
		TermoNumero:       "123/2025",
		EmpresaNome:       "Calçados Exemplo Ltda",
		EmpresaCNPJ:       "12345678000190",
		EmpresaCGCTE:      "096/1234567",
		EmpresaEndereco:   "Rua das Flores, 100, Novo Hamburgo/RS",
		ProaNumero:        "24/0500-0001234-5",
		ProaData:          "03/09/2024",
		RepresentanteNome: "João da Silva",
		RepresentanteCPF:  "12345678901",
		ParecerNumero:     "045/2025",
		ParecerData:       "10/01/2025",
		DOEData:           "15/01/2025",

		EmpresaPorte:         "Médio",
		Cidade:               "Novo Hamburgo",
		Corede:               "Vale do Rio dos Sinos",
		QtdEmpregos:          "297",
		PontosFundopem:       "60",
		PontosSetEstrategico: "10",
		PontosIntensidadeTec: "5",
		PercentualIntegrar:   "34,55",
		PontosIdese:          "8",
		PontosSetorIndust:    "12",

		ValorTotal:        "693224,32",
		ValorApresentado:  "193874,41",
		ValorAceito:       "159123,22",
		ValorEquipamentos: "113874,41",
		LimiteMaxLiberado: "239509,00",
		ValorFruicao:      "62299,92",
		InicioVigencia:    "01/05/2025",
		FinalFruicao:      "30/04/2033",
		MesRegularidade:   "Junho/2033",
	}
}

func TestBuildReplacementsSimpleMarkers(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), BrazilianPortuguese)

	tests := []struct {
		key  string
		want string
	}{
		{"#xx/aaaa#", "123/2025"},
		{"#EMPRESA#", "CALÇADOS EXEMPLO LTDA"},
		{"#XX.XXX.XXX/0001-XX#", "12.345.678/0001-90"},
		{"#REPRESENTANTE#", "João da Silva"},
		{"#proa#", "24/0500-0001234-5"},
		{"#cgcte#", "096/1234567"},
		{"#porte#", "Médio"},
		{"#pontos#", "60"},
		{"#inicio#", "01.05.2025"},
		{"#final#", "Abril/2033"},
		{"#final2#", "Abril/2033"},
		{"#regularidade#", "Junho/2033"},
		{"#MUNICIPIO_E_COREDE#", "Novo Hamburgo/RS (COREDE: Vale do Rio dos Sinos)"},
		{keyCPFBoilerplate, "CPF 123.456.789-01"},
	}

	for _, tt := range tests {
		got, ok := reps.Get(tt.key)
		if !ok {
			t.Errorf("key %q missing", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("key %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestBuildReplacementsBareCPFRemoved(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), BrazilianPortuguese)

	// The bare markers leave the map once the full phrase is in, so the
	// CPF inside "CPF XXX.XXX.XXX-XX" can never match twice.
	for _, key := range []string{"#CPF#", "#cpf#"} {
		if _, ok := reps.Get(key); ok {
			t.Errorf("key %q should have been removed", key)
		}
	}
	if _, ok := reps.Get(keyCPFBoilerplate); !ok {
		t.Error("CPF boilerplate key missing")
	}
}

func TestBuildReplacementsMonetary(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), BrazilianPortuguese)

	total, ok := reps.Get(keyValorTotal)
	if !ok {
		t.Fatal("total value key missing")
	}
	want := "693.224,32 UIF/RS (seiscentos e noventa e três mil, duzentos e vinte e quatro inteiros, e trinta e dois centésimos de Unidades de Incentivo do FUNDOPEM/RS)"
	if total != want {
		t.Errorf("total = %q, want %q", total, want)
	}

	// Bare cross-reference markers carry only the formatted number.
	refs := map[string]string{
		"=g10": "193.874,41",
		"=g11": "159.123,22",
		"=g8":  "239.509,00",
		"=g21": "62.299,92",
	}
	for key, want := range refs {
		got, ok := reps.Get(key)
		if !ok {
			t.Errorf("ref marker %q missing", key)
			continue
		}
		if got != want {
			t.Errorf("ref marker %q = %q, want %q", key, got, want)
		}
	}

	equip, ok := reps.Get(keyEquipamentos)
	if !ok {
		t.Fatal("equipment sentence key missing")
	}
	if !strings.HasPrefix(equip, "Do valor estabelecido no item 2.3.1") ||
		!strings.Contains(equip, "113.874,41 UIF/RS") ||
		!strings.HasSuffix(equip, "contempla os investimentos realizados em equipamentos.") {
		t.Errorf("equipment sentence = %q", equip)
	}
}

func TestBuildReplacementsEmptyMonetaryFieldsAbsent(t *testing.T) {
	d := fullTermoData()
	d.ValorTotal = ""
	d.ValorEquipamentos = ""

	reps := BuildReplacements(d, BrazilianPortuguese)

	if _, ok := reps.Get(keyValorTotal); ok {
		t.Error("total key present despite empty field")
	}
	if _, ok := reps.Get(keyEquipamentos); ok {
		t.Error("equipment key present despite empty field")
	}
	// Other values stay.
	if _, ok := reps.Get(keyValorAceito); !ok {
		t.Error("accepted value key missing")
	}
}

func TestBuildReplacementsPontosAndPercent(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), BrazilianPortuguese)

	if got, _ := reps.Get("#pontos# (sessenta) pontos"); got != "60 (sessenta) pontos" {
		t.Errorf("pontos phrase = %q", got)
	}
	if got, _ := reps.Get("#integrar# (trinta e quatro vírgula cinquenta e cinco por cento)"); got != "34,55% (trinta e quatro vírgula cinquenta e cinco por cento)" {
		t.Errorf("percent phrase = %q", got)
	}
	if got, _ := reps.Get("#integrar#%"); got != "34,55%" {
		t.Errorf("percent marker = %q", got)
	}
	if got, _ := reps.Get("#emp#"); got != "297" {
		t.Errorf("job count = %q", got)
	}
	if got, _ := reps.Get("(duzentos e noventa e sete)"); got != "(duzentos e noventa e sete)" {
		t.Errorf("job count words = %q", got)
	}
}

func TestBuildReplacementsConditionalSentences(t *testing.T) {
	d := fullTermoData()
	reps := BuildReplacements(d, BrazilianPortuguese)

	parecer, ok := reps.Get(keyParecer)
	if !ok {
		t.Fatal("parecer sentence missing despite complete data")
	}
	if parecer != "Parecer nº 045/2025, de 10.01.2025 (DOE de 15.01.2025)" {
		t.Errorf("parecer sentence = %q", parecer)
	}

	proa, ok := reps.Get(keyProa)
	if !ok {
		t.Fatal("PROA sentence missing despite complete data")
	}
	if !strings.Contains(proa, "nº 24/0500-0001234-5, de 03.09.2024,") {
		t.Errorf("PROA sentence = %q", proa)
	}

	// Missing DOE date suppresses the parecer sentence entirely; the
	// template example text stays and is reported as unmatched later.
	d.DOEData = ""
	reps = BuildReplacements(d, BrazilianPortuguese)
	if _, ok := reps.Get(keyParecer); ok {
		t.Error("parecer sentence present despite missing DOE date")
	}

	d = fullTermoData()
	d.ProaData = "data inválida"
	reps = BuildReplacements(d, BrazilianPortuguese)
	if _, ok := reps.Get(keyProa); ok {
		t.Error("PROA sentence present despite unparsable date")
	}
}

func TestBuildReplacementsMunicipioRequiresBoth(t *testing.T) {
	d := fullTermoData()
	d.Corede = ""

	reps := BuildReplacements(d, BrazilianPortuguese)
	if _, ok := reps.Get("#MUNICIPIO_E_COREDE#"); ok {
		t.Error("composite marker present despite missing COREDE")
	}
	if got, _ := reps.Get("#cidade#"); got != "Novo Hamburgo" {
		t.Errorf("city marker = %q", got)
	}
}

func TestBuildReplacementsKeyOrder(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), BrazilianPortuguese)
	keys := reps.Keys()

	idx := func(key string) int {
		for i, k := range keys {
			if k == key {
				return i
			}
		}
		t.Fatalf("key %q not in map", key)
		return -1
	}

	// Boilerplate sentences precede the bare markers their values embed.
	if idx(keyValorApresentado) > idx("=g10") {
		t.Error("boilerplate sentence ordered after its bare cross-reference")
	}
	if idx("#integrar#%") > idx("#integrar#") {
		t.Error("longer percent marker ordered after the bare one")
	}
	if idx("#final#") > idx("#final2#") {
		t.Error("#final# ordered after #final2#")
	}
}

func TestBuildReplacementsEmptyData(t *testing.T) {
	reps := BuildReplacements(TermoData{}, BrazilianPortuguese)

	// Simple markers are always present, even with empty values: they
	// must disappear from the generated document.
	for _, key := range []string{"#xx/aaaa#", "#EMPRESA#", "#proa#", "#inicio#", "#final#"} {
		got, ok := reps.Get(key)
		if !ok {
			t.Errorf("key %q missing", key)
			continue
		}
		if got != "" {
			t.Errorf("key %q = %q, want empty", key, got)
		}
	}

	// Monetary boilerplate and conditional sentences are absent.
	for _, key := range []string{keyValorTotal, keyEquipamentos, keyParecer, keyProa} {
		if _, ok := reps.Get(key); ok {
			t.Errorf("key %q present despite empty data", key)
		}
	}
}

func TestBuildReplacementsNilLocale(t *testing.T) {
	reps := BuildReplacements(fullTermoData(), nil)
	if got, _ := reps.Get("#EMPRESA#"); got != "CALÇADOS EXEMPLO LTDA" {
		t.Errorf("nil locale should default to pt-BR, got %q", got)
	}
}
