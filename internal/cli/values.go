package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kmzmath/gerador-termos-SEADAP/pkg/termo"
)

// LoadTermoData reads the term data from a TOML file, for scripted use
// without the interactive form. Unknown keys are rejected so a typo in
// a field name surfaces instead of silently leaving a marker empty.
func LoadTermoData(path string) (termo.TermoData, error) {
	var data termo.TermoData

	meta, err := toml.DecodeFile(path, &data)
	if err != nil {
		return termo.TermoData{}, fmt.Errorf("failed to load values file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return termo.TermoData{}, fmt.Errorf("unknown key %q in values file %s", undecoded[0].String(), path)
	}

	return data, nil
}
