// Package catalog provides the product catalog the generator draws from:
// an ordered list of explicit name/category pairs. Pairing name and category
// in one entry keeps the relation in the data itself instead of relying on
// two lists staying positionally aligned.
//
// The default catalog is embedded in the binary; an alternative YAML file
// with the same schema may be loaded instead:
//
//	products:
//	  - name: Laptop
//	    category: Electronics
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Entry is one product definition. Product ids are assigned positionally by
// the generator, so the order of entries is significant.
type Entry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type catalogFile struct {
	Products []Entry `yaml:"products"`
}

// Load returns the catalog entries from the YAML file at path, or the
// embedded default catalog when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Parse(embedded)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return entries, nil
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) ([]Entry, error) {
	var cf catalogFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	err = validate(cf.Products)
	if err != nil {
		return nil, err
	}

	return cf.Products, nil
}

func validate(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("catalog has no products")
	}

	seen := make(map[string]struct{}, len(entries))

	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("catalog entry %d has an empty name", i)
		}
		if e.Category == "" {
			return fmt.Errorf("catalog entry %q has an empty category", e.Name)
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	return nil
}
