// Package entities holds the data model shared by the search pipeline:
// per-source records, the ordered result set, categories and probe results.
package entities

import (
	"maps"
	"strings"

	"github.com/spf13/cast"
)

// Well-known record fields
const (
	FieldName   = "nombre"
	FieldURL    = "url"
	FieldOrigin = "fuente"
)

// Record is what a single source answered. Fields hold either a string or a
// list of strings; each source populates only the keys it can.
type Record struct {
	Fields     map[string]any
	Translated bool
}

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{Fields: make(map[string]any)}
}

// Set stores a string field, ignoring blank values so that missing data stays absent
func (r *Record) Set(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	r.Fields[key] = value
}

// SetList stores a list field, ignoring empty lists
func (r *Record) SetList(key string, values []string) {
	if len(values) == 0 {
		return
	}
	r.Fields[key] = values
}

// Has reports whether the field is present with a non-empty value
func (r *Record) Has(key string) bool {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	default:
		return cast.ToString(val) != ""
	}
}

// Text returns the field when it holds a string value
func (r *Record) Text(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

// Strings returns the field as a list, wrapping scalar values
func (r *Record) Strings(key string) []string {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return nil
	}
	if s, isString := v.(string); isString {
		return []string{s}
	}
	return cast.ToStringSlice(v)
}

// Name returns the "nombre" field
func (r *Record) Name() string {
	s, _ := r.Text(FieldName)
	return s
}

// URL returns the "url" field
func (r *Record) URL() string {
	s, _ := r.Text(FieldURL)
	return s
}

// Origin returns the "fuente" field
func (r *Record) Origin() string {
	s, _ := r.Text(FieldOrigin)
	return s
}

// Len returns the number of populated fields
func (r *Record) Len() int {
	return len(r.Fields)
}

// Clone returns a copy safe to mutate. List values are shared.
func (r *Record) Clone() *Record {
	return &Record{
		Fields:     maps.Clone(r.Fields),
		Translated: r.Translated,
	}
}
