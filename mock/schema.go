package mock

import "github.com/fwojciec/ibl"

var _ ibl.Schema = (*Schema)(nil)

// Schema is a mock implementation of ibl.Schema.
type Schema struct {
	FieldFn     func(name string) (ibl.Field, bool)
	ValidatedFn func(records []*ibl.Record) []*ibl.Record
}

func (s *Schema) Field(name string) (ibl.Field, bool) {
	return s.FieldFn(name)
}

func (s *Schema) Validated(records []*ibl.Record) []*ibl.Record {
	return s.ValidatedFn(records)
}
