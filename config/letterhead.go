package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Letterhead is the church identification printed on every document
type Letterhead struct {
	ChurchName    string `yaml:"church_name"`
	CNPJ          string `yaml:"cnpj"`
	Address       string `yaml:"address"`
	TithesTitle   string `yaml:"tithes_title"`
	PaymentsTitle string `yaml:"payments_title"`
}

// DefaultLetterhead returns the letterhead used when no file is configured
func DefaultLetterhead() *Letterhead {
	return &Letterhead{
		ChurchName:    "IGREJA BÍBLICA SEMEAR",
		CNPJ:          "70.098.553/0001-04",
		Address:       "R. Vigário Calixto 1555 Catolé - Campina Grande",
		TithesTitle:   "RECIBO DE ENTRADA DE DÍZIMO E OFERTAS",
		PaymentsTitle: "PAGAMENTOS DIVERSOS",
	}
}

// LoadLetterhead reads a YAML letterhead file, expanding environment variables.
// Fields left empty in the file keep their default values.
func LoadLetterhead(path string) (*Letterhead, error) {
	lh := DefaultLetterhead()
	if path == "" {
		return lh, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logg.Warnf("⚠️ LoadLetterhead: %s not found, using default letterhead", path)
		return lh, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read letterhead file: %w", err)
	}

	var fromFile Letterhead
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &fromFile); err != nil {
		return nil, fmt.Errorf("failed to parse letterhead file: %w", err)
	}

	merge(&lh.ChurchName, fromFile.ChurchName)
	merge(&lh.CNPJ, fromFile.CNPJ)
	merge(&lh.Address, fromFile.Address)
	merge(&lh.TithesTitle, fromFile.TithesTitle)
	merge(&lh.PaymentsTitle, fromFile.PaymentsTitle)
	return lh, nil
}

func merge(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
