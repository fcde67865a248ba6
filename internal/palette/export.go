package palette

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Record is the exported form of an Entry.
type Record struct {
	Name string `yaml:"name" toml:"name"`
	Hex  string `yaml:"hex"  toml:"hex"`
	R    uint8  `yaml:"r"    toml:"r"`
	G    uint8  `yaml:"g"    toml:"g"`
	B    uint8  `yaml:"b"    toml:"b"`
	A    uint8  `yaml:"a"    toml:"a"`
}

// Records converts the table into exportable records, in table order.
func (t Table) Records() []Record {
	records := make([]Record, len(t))
	for i, e := range t {
		records[i] = Record{
			Name: e.Name,
			Hex:  Hex(e.Color),
			R:    e.Color.R,
			G:    e.Color.G,
			B:    e.Color.B,
			A:    e.Color.A,
		}
	}
	return records
}

// MarshalYAMLDocument renders the table as a YAML document with a top-level
// "categories" list.
func (t Table) MarshalYAMLDocument() ([]byte, error) {
	doc := struct {
		Categories []Record `yaml:"categories"`
	}{Categories: t.Records()}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshalling yaml: %w", err)
	}
	return data, nil
}

// MarshalTOMLDocument renders the table as TOML, one [[categories]] table
// per entry.
func (t Table) MarshalTOMLDocument() ([]byte, error) {
	doc := struct {
		Categories []Record `toml:"categories"`
	}{Categories: t.Records()}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("marshalling toml: %w", err)
	}
	return buf.Bytes(), nil
}
