package termo

import (
	"fmt"
	"strings"
)

// TermoData holds the form fields of one adjustment term. Every field
// is optional free text; date fields accept anything ParseDate does.
type TermoData struct {
	// Informações gerais
	TermoNumero       string `toml:"termo_numero"`
	EmpresaNome       string `toml:"empresa_nome"`
	EmpresaCNPJ       string `toml:"empresa_cnpj"`
	EmpresaCGCTE      string `toml:"empresa_cgcte"`
	EmpresaEndereco   string `toml:"empresa_endereco"`
	ProaNumero        string `toml:"proa_numero"`
	ProaData          string `toml:"proa_data"`
	RepresentanteNome string `toml:"representante_nome"`
	RepresentanteCPF  string `toml:"representante_cpf"`
	ParecerNumero     string `toml:"parecer_numero"`
	ParecerData       string `toml:"parecer_data"`
	DOEData           string `toml:"doe_data"`

	// Detalhes do projeto
	EmpresaPorte         string `toml:"empresa_porte"`
	Cidade               string `toml:"cidade"`
	Corede               string `toml:"corede"`
	QtdEmpregos          string `toml:"qtd_empregos"`
	PontosFundopem       string `toml:"pontos_fundopem"`
	PontosSetEstrategico string `toml:"pontos_set_estrategicos"`
	PontosIntensidadeTec string `toml:"pontos_intensidade_tec"`
	PercentualIntegrar   string `toml:"percentual_integrar"`
	PontosIdese          string `toml:"pontos_idese"`
	PontosSetorIndust    string `toml:"pontos_setor_industrial"`

	// Valores e prazos
	ValorTotal          string `toml:"valor_total"`
	ValorApresentado    string `toml:"valor_apresentado"`
	ValorAceito         string `toml:"valor_aceito"`
	ValorEquipamentos   string `toml:"valor_equipamentos"`
	LimiteMaxLiberado   string `toml:"limite_max_liberado"`
	ValorFruicao        string `toml:"valor_fruicao"`
	InicioVigencia      string `toml:"inicio_vigencia"`
	FinalFruicao        string `toml:"final_fruicao"`
	MesRegularidade     string `toml:"mes_regularidade"`
}

// The monetary boilerplate keys are the template's example sentences,
// verbatim. Any edit to the template text silently breaks matching,
// which is why the engine logs keys that never match.
const (
	keyValorTotal = "693.224,32 UIF/RS (seiscentos e noventa e três mil, duzentos e vinte e quatro inteiros, e trinta e dois centésimos de Unidades de Incentivo do FUNDOPEM/RS)"

	keyValorApresentado = "193.874,41 UIF/RS (cento e noventa e três mil, oitocentos e setenta e quatro inteiros, e quarenta e um centésimos de Unidades de Incentivo do FUNDOPEM/RS)"

	keyValorAceito = "159.123,22 UIF/RS (cento e cinquenta e nove mil, cento e vinte e três inteiros, e vinte e dois centésimos de Unidades de Incentivo do FUNDOPEM/RS)"

	keyEquipamentos = "Do valor estabelecido no item 2.3.1 desta Cláusula, o montante de 113.874,41 UIF/RS (cento e noventa e três mil, oitocentos e setenta e quatro inteiros, e quarenta e um centésimos de Unidades de Incentivo do FUNDOPEM/RS) contempla os investimentos realizados em equipamentos."

	keyLimiteMaximo = "239.509,00 UIF/RS (duzentos e trinta e nove mil, e quinhentos e nove inteiros de Unidades de Incentivo do FUNDOPEM/RS)"

	keyValorFruicao = "62.299,92 UIF/RS (sessenta e dois mil, duzentos e noventa e nove inteiros, e noventa e dois centésimos de Unidades de Incentivo do FUNDOPEM/RS)"

	keyParecer = "Parecer nº xxx/aaaa, de dd.mm.aaaa (DOE de dd.mm.aaaa)"

	keyProa = "e na documentação que instrui o processo administrativo nº #proa#, de 03 de setembro de 2024, que passam a fazer parte integrante deste instrumento."

	keyCPFBoilerplate = "CPF XXX.XXX.XXX-XX"
)

// uifPhrase renders the live value of a monetary boilerplate sentence:
// the formatted amount plus its spelled-out form.
func uifPhrase(loc *Locale, formatted string) string {
	return fmt.Sprintf("%s UIF/RS (%s de Unidades de Incentivo do FUNDOPEM/RS)",
		formatted, loc.NumberInWords(formatted, ExtensoUIF))
}

// addValor inserts a monetary boilerplate replacement when the field is
// non-empty, plus an optional bare-number cross-reference marker.
func addValor(reps *Replacements, loc *Locale, key, value, ref string) {
	if value == "" {
		return
	}
	formatted := loc.Currency(value)
	reps.Set(key, uifPhrase(loc, formatted))
	if ref != "" {
		reps.Set(ref, formatted)
	}
}

// BuildReplacements assembles the ordered placeholder map for one term.
// Insertion and removal order is a contract: the CPF boilerplate key is
// added before the bare CPF markers are deleted, so the bare CPF can
// never be substituted a second time inside the longer phrase.
func BuildReplacements(d TermoData, loc *Locale) *Replacements {
	if loc == nil {
		loc = BrazilianPortuguese
	}
	reps := NewReplacements()

	// Valores (independentes)
	addValor(reps, loc, keyValorTotal, d.ValorTotal, "")
	addValor(reps, loc, keyValorApresentado, d.ValorApresentado, "=g10")
	addValor(reps, loc, keyValorAceito, d.ValorAceito, "=g11")
	if d.ValorEquipamentos != "" {
		formatted := loc.Currency(d.ValorEquipamentos)
		reps.Set(keyEquipamentos, fmt.Sprintf(
			"Do valor estabelecido no item 2.3.1 desta Cláusula, o montante de %s contempla os investimentos realizados em equipamentos.",
			uifPhrase(loc, formatted)))
	}
	addValor(reps, loc, keyLimiteMaximo, d.LimiteMaxLiberado, "=g8")
	addValor(reps, loc, keyValorFruicao, d.ValorFruicao, "=g21")

	// Pontos e percentual
	if d.PontosFundopem != "" {
		reps.Set("#pontos# (sessenta) pontos", fmt.Sprintf("%s (%s) pontos",
			d.PontosFundopem, loc.NumberInWords(d.PontosFundopem, ExtensoGeral)))
	}
	if d.PercentualIntegrar != "" {
		percExt := loc.NumberInWords(d.PercentualIntegrar, ExtensoPercent) + " por cento"
		reps.Set("#integrar# (trinta e quatro vírgula cinquenta e cinco por cento)",
			fmt.Sprintf("%s%% (%s)", d.PercentualIntegrar, percExt))
		reps.Set("#integrar#%", d.PercentualIntegrar+"%")
		reps.Set("#integrar#", d.PercentualIntegrar)
	}

	// Quantidade de empregos
	if d.QtdEmpregos != "" {
		empExt := "(" + loc.NumberInWords(d.QtdEmpregos, ExtensoGeral) + ")"
		reps.Set("#emp#", d.QtdEmpregos)
		reps.Set("(duzentos e noventa e sete)", empExt)
		reps.Set("(duzentos e noventa e quatro)", empExt)
	}

	// Marcadores simples, sempre inseridos (valor possivelmente vazio).
	reps.Set("#xx/aaaa#", d.TermoNumero)
	reps.Set("#EMPRESA#", loc.Upper(d.EmpresaNome))
	reps.Set("#ENDERECO#", d.EmpresaEndereco)
	reps.Set("#XX.XXX.XXX/0001-XX#", FormatCNPJ(d.EmpresaCNPJ))
	reps.Set("#REPRESENTANTE#", d.RepresentanteNome)
	reps.Set("#CPF#", FormatCPF(d.RepresentanteCPF))
	reps.Set("#cpf#", FormatCPF(d.RepresentanteCPF))
	reps.Set("#proa#", d.ProaNumero)
	reps.Set("#cidade#", d.Cidade)
	reps.Set("#corede#", d.Corede)
	if d.Cidade != "" && d.Corede != "" {
		reps.Set("#MUNICIPIO_E_COREDE#", fmt.Sprintf("%s/RS (COREDE: %s)", d.Cidade, d.Corede))
	}
	reps.Set("#idese#", d.PontosIdese)
	reps.Set("#setint#", d.PontosSetorIndust)
	reps.Set("#set#", d.PontosSetEstrategico)
	reps.Set("#it#", d.PontosIntensidadeTec)
	reps.Set("#porte#", d.EmpresaPorte)
	reps.Set("#cgcte#", d.EmpresaCGCTE)
	reps.Set("#pontos#", d.PontosFundopem)

	// O marcador bruto de CPF sai do mapa depois que a frase completa
	// entra; a ordem evita substituição dupla dentro da frase.
	reps.Set(keyCPFBoilerplate, "CPF "+FormatCPF(d.RepresentanteCPF))
	reps.Delete("#CPF#")
	reps.Delete("#cpf#")

	// Datas
	dtInicio, _ := loc.ParseDate(d.InicioVigencia)
	dtFinal, _ := loc.ParseDate(d.FinalFruicao)
	dtParecer, okParecer := loc.ParseDate(d.ParecerData)
	dtDOE, okDOE := loc.ParseDate(d.DOEData)
	dtProa, okProa := loc.ParseDate(d.ProaData)

	reps.Set("#inicio#", loc.DottedDate(dtInicio))

	finalMesAno := loc.LongDate(dtFinal, true)
	reps.Set("#final#", finalMesAno)
	reps.Set("#final2#", strings.ReplaceAll(finalMesAno, " ", ""))
	reps.Set("#regularidade#", d.MesRegularidade)

	if d.ParecerNumero != "" && okParecer && okDOE {
		reps.Set(keyParecer, fmt.Sprintf("Parecer nº %s, de %s (DOE de %s)",
			d.ParecerNumero, loc.DottedDate(dtParecer), loc.DottedDate(dtDOE)))
	}

	if d.ProaNumero != "" && okProa {
		reps.Set(keyProa, fmt.Sprintf(
			"e na documentação que instrui o processo administrativo nº %s, de %s, que passam a fazer parte integrante deste instrumento.",
			d.ProaNumero, loc.DottedDate(dtProa)))
	}

	return reps
}
