package ibl

// Validator cleans an extracted value. It returns false to reject the value.
type Validator func(value string) (string, bool)

// Field describes one attribute of an item schema.
type Field struct {
	Name        string
	Description string
	Required    bool

	// AllowMarkup extracts the raw markup of the region instead of its text.
	AllowMarkup bool

	// Validator is applied to every extracted value. Nil keeps values as-is.
	Validator Validator
}

// Schema describes the attributes of extracted items.
type Schema interface {
	// Field returns the descriptor for name.
	Field(name string) (Field, bool)

	// Validated returns the records that satisfy the schema.
	Validated(records []*Record) []*Record
}

var _ Schema = (*ItemSchema)(nil)

// ItemSchema is a Schema backed by a list of fields.
type ItemSchema struct {
	Name   string
	Fields []Field
}

// NewItemSchema returns a schema with the given fields.
func NewItemSchema(name string, fields ...Field) *ItemSchema {
	return &ItemSchema{Name: name, Fields: fields}
}

// Field returns the descriptor for name.
func (s *ItemSchema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the names of required fields.
func (s *ItemSchema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validated keeps the records that carry every required field, either
// directly or in one of their variants.
func (s *ItemSchema) Validated(records []*Record) []*Record {
	required := s.Required()
	var out []*Record
	for _, r := range records {
		if r.HasAll(required) {
			out = append(out, r)
		}
	}
	return out
}
