package ibl

import "encoding/json"

// Record is one extracted item: a map from attribute name to the values
// found for it, plus optional variant sub-records. Values keep extraction
// order; attribute names are unordered.
type Record struct {
	Attributes map[string][]string
	Variants   []*Record

	// Trace is populated only when tracing is enabled.
	Trace []string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{Attributes: make(map[string][]string)}
}

// Add appends value to the attribute name.
func (r *Record) Add(name, value string) {
	if r.Attributes == nil {
		r.Attributes = make(map[string][]string)
	}
	r.Attributes[name] = append(r.Attributes[name], value)
}

// Get returns the values of attribute name.
func (r *Record) Get(name string) []string {
	return r.Attributes[name]
}

// Has reports whether the record or any of its variants has attribute name.
func (r *Record) Has(name string) bool {
	if len(r.Attributes[name]) > 0 {
		return true
	}
	for _, v := range r.Variants {
		if v.Has(name) {
			return true
		}
	}
	return false
}

// HasAll reports whether every name in names is present, per Has.
func (r *Record) HasAll(names []string) bool {
	for _, name := range names {
		if !r.Has(name) {
			return false
		}
	}
	return true
}

// Empty reports whether the record holds no attributes and no variants.
func (r *Record) Empty() bool {
	return len(r.Attributes) == 0 && len(r.Variants) == 0
}

// MarshalJSON encodes the record as a flat object: attributes as keys,
// then "variants" and "trace" when present.
func (r *Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Attributes)+2)
	for k, v := range r.Attributes {
		m[k] = v
	}
	if len(r.Variants) > 0 {
		m["variants"] = r.Variants
	}
	if len(r.Trace) > 0 {
		m["trace"] = r.Trace
	}
	return json.Marshal(m)
}
