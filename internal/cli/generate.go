package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmzmath/gerador-termos-SEADAP/pkg/termo"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// runGenerate is the whole pipeline behind the root command: resolve
// configuration, collect data (form or values file), fill the template
// and write the result.
func runGenerate(opts *GenerateOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	termo.SetGlobalConfig(cfg)

	// The template must exist before the user spends time on the form.
	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Modelo não encontrado: ")+cfg.TemplatePath)
		return termo.NewDocumentError("open", cfg.TemplatePath, err)
	}

	var data termo.TermoData
	switch {
	case opts.ValuesPath != "":
		data, err = LoadTermoData(opts.ValuesPath)
		if err != nil {
			return err
		}
	case opts.NoTUI:
		return errors.New("--no-tui requires --values")
	default:
		if err := runForm(&data); err != nil {
			return err
		}
	}

	name, content, err := termo.Generate(cfg, data)
	if err != nil {
		var ve *termo.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Marcadores não encontrados no modelo:"))
			for _, issue := range ve.Issues {
				fmt.Fprintf(os.Stderr, "  - %s\n", issue.Field)
			}
		}
		return err
	}

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return termo.NewDocumentError("write", outPath, err)
	}

	fmt.Println(successStyle.Render("Termo gerado: ") + pathStyle.Render(outPath))
	return nil
}
