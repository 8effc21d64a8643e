// Package cli provides the Cobra command definitions for gerador-termos.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmzmath/gerador-termos-SEADAP/pkg/termo"
)

// GenerateOptions contains the options for one generation run.
type GenerateOptions struct {
	ConfigPath string
	Template   string
	ValuesPath string
	OutputDir  string
	Strict     bool
	NoTUI      bool
}

// NewRootCommand creates the root command. Version information is set
// at build time via ldflags and passed in by main.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "gerador-termos",
		Short: "Gera Termos de Ajuste do FUNDOPEM/RS a partir do modelo oficial",
		Long: `gerador-termos preenche o modelo DOCX do programa RECUPERA EXPRESS
(FUNDOPEM/RS) com os dados de um enquadramento, preservando toda a
formatação do documento original.

Sem argumentos, um formulário interativo coleta os dados. Com
--values, os dados são lidos de um arquivo TOML e nenhuma interação
é necessária.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "caminho do arquivo de configuração TOML")
	cmd.Flags().StringVar(&opts.Template, "template", "", "caminho do modelo DOCX (sobrepõe a configuração)")
	cmd.Flags().StringVar(&opts.ValuesPath, "values", "", "arquivo TOML com os dados do termo (modo não interativo)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "diretório de saída (sobrepõe a configuração)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "falha quando algum marcador não é encontrado no modelo")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "desabilita o formulário interativo; exige --values")

	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// resolveConfig merges configuration sources: defaults, environment,
// optional TOML file, then command-line flags, strongest last.
func resolveConfig(opts *GenerateOptions) (*termo.Config, error) {
	cfg := termo.ConfigFromEnvironment()

	if opts.ConfigPath != "" {
		loaded, err := termo.LoadConfigFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Template != "" {
		cfg.TemplatePath = opts.Template
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Strict {
		cfg.StrictPlaceholders = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
