// Package termo generates FUNDOPEM/RS adjustment terms: it fills a
// fixed DOCX template with user-supplied values through a run-aware
// placeholder substitution that preserves every formatting boundary.
//
// Basic usage:
//
//	tmpl, err := termo.PrepareFile("TEMPLATE_RECUPERA_EXPRESS.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reps := termo.BuildReplacements(data, termo.BrazilianPortuguese)
//	output, err := tmpl.Fill(reps)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name := termo.OutputFileName(data.TermoNumero, data.EmpresaNome)
//	os.WriteFile(name, output, 0o644)
package termo

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	docxml "github.com/kmzmath/gerador-termos-SEADAP/pkg/termo/xml"
)

// Template is one parsed copy of the DOCX template. Each request
// prepares its own instance; nothing is shared between requests.
type Template struct {
	docxReader *DocxReader
	document   *docxml.Document
	source     []byte
	strict     bool
}

// PrepareFile loads and parses the template at path. A missing file is
// fatal to the request and reported with the path, before any other
// computation happens.
func PrepareFile(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	tmpl, err := Prepare(bytes.NewReader(content))
	if err != nil {
		if de, ok := err.(*DocumentError); ok {
			de.Path = path
		}
		return nil, err
	}
	return tmpl, nil
}

// Prepare loads and parses a template from an io.Reader.
func Prepare(r io.Reader) (*Template, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return nil, NewDocumentError("read", "", err)
	}

	source := buf.Bytes()
	docxReader, err := NewDocxReader(bytes.NewReader(source), size)
	if err != nil {
		return nil, NewDocumentError("parse", "", err)
	}

	docXML, err := docxReader.GetDocumentXML()
	if err != nil {
		return nil, NewDocumentError("extract", "word/document.xml", err)
	}

	doc, err := docxml.ParseDocument(bytes.NewReader(docXML))
	if err != nil {
		return nil, NewDocumentError("parse", "word/document.xml", err)
	}

	return &Template{
		docxReader: docxReader,
		document:   doc,
		source:     source,
	}, nil
}

// SetStrict makes Fill return a ValidationError when any placeholder
// key matches nowhere in the document, instead of only logging it.
func (t *Template) SetStrict(strict bool) {
	t.strict = strict
}

// Document exposes the parsed document, mainly for tests.
func (t *Template) Document() *docxml.Document {
	return t.document
}

// Fill substitutes every placeholder and returns the filled DOCX as a
// byte buffer. Keys that match zero times across the whole document
// are logged at warn level; they usually mean the template's example
// sentences drifted away from the literal keys.
func (t *Template) Fill(reps *Replacements) ([]byte, error) {
	stats, err := Replace(t.document, reps)
	if err != nil {
		return nil, err
	}

	unmatched := stats.Unmatched(reps)
	for _, key := range unmatched {
		GetLogger().WithField("key", truncateKey(key)).Warn("placeholder never matched in document")
	}
	if t.strict && len(unmatched) > 0 {
		ve := &ValidationError{}
		for _, key := range unmatched {
			ve.Issues = append(ve.Issues, ValidationIssue{
				Field:   truncateKey(key),
				Message: "placeholder never matched in document",
			})
		}
		return nil, ve
	}

	return t.build()
}

// build rebuilds the DOCX package: word/document.xml is re-serialized
// from the mutated model, every other part is copied byte-for-byte.
func (t *Template) build() ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	zipReader, err := zip.NewReader(bytes.NewReader(t.source), int64(len(t.source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source zip: %w", err)
	}

	for _, file := range zipReader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}

		if file.Name == "word/document.xml" {
			if _, err := fw.Write(t.document.Bytes()); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output: %w", err)
	}
	return buf.Bytes(), nil
}

// OutputFileName builds the download name of a generated document:
// Termo_Ajuste_<termo|novo>_<empresa|empresa>.docx, with slashes in the
// term number replaced by hyphens and spaces in the company name by
// underscores.
func OutputFileName(termoNumero, empresaNome string) string {
	termo := termoNumero
	if termo == "" {
		termo = "novo"
	}
	empresa := empresaNome
	if empresa == "" {
		empresa = "empresa"
	}
	termo = strings.ReplaceAll(termo, "/", "-")
	empresa = strings.ReplaceAll(empresa, " ", "_")
	return fmt.Sprintf("Termo_Ajuste_%s_%s.docx", termo, empresa)
}

// Generate runs the whole pipeline for one request: prepare the
// template named by cfg, build the placeholder map and fill. It
// returns the output file name and content.
func Generate(cfg *Config, data TermoData) (string, []byte, error) {
	if cfg == nil {
		cfg = GetGlobalConfig()
	}

	tmpl, err := PrepareFile(cfg.TemplatePath)
	if err != nil {
		return "", nil, err
	}
	tmpl.SetStrict(cfg.StrictPlaceholders)

	reps := BuildReplacements(data, BrazilianPortuguese)
	GetLogger().WithField("entries", reps.Len()).Debug("placeholder map built")

	content, err := tmpl.Fill(reps)
	if err != nil {
		return "", nil, err
	}

	return OutputFileName(data.TermoNumero, data.EmpresaNome), content, nil
}

// truncateKey shortens long boilerplate-sentence keys for log lines,
// cutting on a rune boundary.
func truncateKey(key string) string {
	const max = 60
	if utf8.RuneCountInString(key) <= max {
		return key
	}
	return string([]rune(key)[:max]) + "..."
}
