// Package yaml loads item schemas from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Name   string      `yaml:"name"`
	Fields []fieldFile `yaml:"fields"`
}

type fieldFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	AllowMarkup bool   `yaml:"allow_markup"`
	Validator   string `yaml:"validator"`
}

// LoadSchema decodes a schema document from r. Validator names are looked
// up in validators.
//
//	name: product
//	fields:
//	  - name: price
//	    required: true
//	    validator: contains_any_numbers
func LoadSchema(r io.Reader, validators map[string]ibl.Validator) (*ibl.ItemSchema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f schemaFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ibl.Errorf(ibl.EINVALID, "empty schema")
		}
		return nil, ibl.Errorf(ibl.EINVALID, "invalid schema: %v", err)
	}

	s := ibl.NewItemSchema(f.Name)
	seen := make(map[string]bool)
	for i, ff := range f.Fields {
		name := strings.TrimSpace(ff.Name)
		if name == "" {
			return nil, ibl.Errorf(ibl.EINVALID, "field %d: name required", i)
		}
		if seen[name] {
			return nil, ibl.Errorf(ibl.EINVALID, "field %q defined twice", name)
		}
		seen[name] = true

		field := ibl.Field{
			Name:        name,
			Description: ff.Description,
			Required:    ff.Required,
			AllowMarkup: ff.AllowMarkup,
		}
		if ff.Validator != "" {
			v, ok := validators[ff.Validator]
			if !ok {
				return nil, ibl.Errorf(ibl.EINVALID, "field %q: unknown validator %q (known: %s)",
					name, ff.Validator, strings.Join(names(validators), ", "))
			}
			field.Validator = v
		}
		s.Fields = append(s.Fields, field)
	}
	return s, nil
}

// LoadSchemaFile reads a schema from path.
func LoadSchemaFile(path string, validators map[string]ibl.Validator) (*ibl.ItemSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ibl.Errorf(ibl.ENOTFOUND, "schema file %s not found", path)
		}
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	return LoadSchema(f, validators)
}

func names(validators map[string]ibl.Validator) []string {
	out := make([]string, 0, len(validators))
	for name := range validators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
