package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/kmzmath/gerador-termos-SEADAP/pkg/termo"
)

// runForm collects the term data interactively, mirroring the three
// sections of the paper form: general information, project details,
// values and deadlines.
func runForm(data *termo.TermoData) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Número do termo").
				Placeholder("123/2025").
				Value(&data.TermoNumero),
			huh.NewInput().
				Title("Nome da empresa").
				Value(&data.EmpresaNome),
			huh.NewInput().
				Title("CNPJ").
				Description("Somente dígitos ou já formatado").
				Value(&data.EmpresaCNPJ),
			huh.NewInput().
				Title("Inscrição estadual (CGC/TE)").
				Value(&data.EmpresaCGCTE),
			huh.NewInput().
				Title("Endereço completo").
				Value(&data.EmpresaEndereco),
			huh.NewInput().
				Title("Número do PROA").
				Value(&data.ProaNumero),
			huh.NewInput().
				Title("Data do PROA").
				Placeholder("dd/mm/aaaa").
				Value(&data.ProaData),
			huh.NewInput().
				Title("Nome do representante legal").
				Value(&data.RepresentanteNome),
			huh.NewInput().
				Title("CPF do representante").
				Value(&data.RepresentanteCPF),
			huh.NewInput().
				Title("Número do parecer").
				Placeholder("xxx/aaaa").
				Value(&data.ParecerNumero),
			huh.NewInput().
				Title("Data do parecer").
				Placeholder("dd/mm/aaaa").
				Value(&data.ParecerData),
			huh.NewInput().
				Title("Data do DOE").
				Placeholder("dd/mm/aaaa").
				Value(&data.DOEData),
		).Title("Informações Gerais"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Porte da empresa").
				Options(
					huh.NewOption("Pequeno", "Pequeno"),
					huh.NewOption("Médio", "Médio"),
					huh.NewOption("Grande", "Grande"),
				).
				Value(&data.EmpresaPorte),
			huh.NewInput().
				Title("Município do projeto").
				Value(&data.Cidade),
			huh.NewInput().
				Title("COREDE").
				Value(&data.Corede),
			huh.NewInput().
				Title("Quantidade de empregos").
				Value(&data.QtdEmpregos),
			huh.NewInput().
				Title("Pontuação FUNDOPEM").
				Value(&data.PontosFundopem),
			huh.NewInput().
				Title("Pontos por setor estratégico").
				Value(&data.PontosSetEstrategico),
			huh.NewInput().
				Title("Pontos por intensidade tecnológica").
				Value(&data.PontosIntensidadeTec),
			huh.NewInput().
				Title("Percentual a integrar").
				Placeholder("34,55").
				Value(&data.PercentualIntegrar),
			huh.NewInput().
				Title("Pontos IDESE").
				Value(&data.PontosIdese),
			huh.NewInput().
				Title("Pontos do setor industrial").
				Value(&data.PontosSetorIndust),
		).Title("Detalhes do Projeto"),

		huh.NewGroup(
			huh.NewInput().
				Title("Valor total do projeto (UIF/RS)").
				Placeholder("693224,32").
				Value(&data.ValorTotal),
			huh.NewInput().
				Title("Valor apresentado (UIF/RS)").
				Value(&data.ValorApresentado),
			huh.NewInput().
				Title("Valor aceito (UIF/RS)").
				Value(&data.ValorAceito),
			huh.NewInput().
				Title("Valor em equipamentos (UIF/RS)").
				Description("Deixe em branco quando não houver").
				Value(&data.ValorEquipamentos),
			huh.NewInput().
				Title("Limite máximo liberado (UIF/RS)").
				Value(&data.LimiteMaxLiberado),
			huh.NewInput().
				Title("Valor mensal de fruição (UIF/RS)").
				Value(&data.ValorFruicao),
			huh.NewInput().
				Title("Início da vigência").
				Placeholder("dd/mm/aaaa").
				Value(&data.InicioVigencia),
			huh.NewInput().
				Title("Final da fruição").
				Placeholder("dd/mm/aaaa").
				Value(&data.FinalFruicao),
			huh.NewInput().
				Title("Mês de regularidade").
				Placeholder("Junho/2033").
				Value(&data.MesRegularidade),
		).Title("Valores e Prazos"),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}
