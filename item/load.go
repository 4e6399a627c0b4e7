package item

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type itemTableFile struct {
	Items []Meta `yaml:"items"`
}

// Load reads a YAML item table into a Store. Entries without an explicit
// category fall back to CategoryForAction on their action type.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item table %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse item table %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML item table from memory.
func Parse(data []byte) (*Store, error) {
	var file itemTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal item table: %w", err)
	}
	s := NewStore()
	for i := range file.Items {
		m := file.Items[i]
		if m.Category == CategoryNone {
			m.Category = CategoryForAction(m.ActionType)
		}
		s.Put(&m)
	}
	return s, nil
}
