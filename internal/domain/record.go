// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one result row. Keys keep the column order of the statement that
// produced it and are encoded to JSON in that order.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord(columns []string, values []any) Record {
	r := Record{
		keys:   make([]string, 0, len(columns)),
		values: make(map[string]any, len(columns)),
	}
	for i, column := range columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.Set(column, v)
	}
	return r
}

// Set replaces the value of an existing key in place or appends a new one.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int {
	return len(r.keys)
}

// LowerKeys returns a copy with every key lower-cased. When two columns only
// differ by case the later value wins and keeps the earlier position.
func (r Record) LowerKeys() Record {
	out := Record{
		keys:   make([]string, 0, len(r.keys)),
		values: make(map[string]any, len(r.keys)),
	}
	for _, key := range r.keys {
		out.Set(strings.ToLower(key), r.values[key])
	}
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range r.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteVal(r.values[key])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	buf := make([]byte, len(stream.Buffer()))
	copy(buf, stream.Buffer())
	return buf, nil
}

// QueryResult is the ordered set of records produced by one statement.
type QueryResult []Record

// LowerKeys lower-cases the keys of every record in the result.
func (q QueryResult) LowerKeys() QueryResult {
	out := make(QueryResult, 0, len(q))
	for _, record := range q {
		out = append(out, record.LowerKeys())
	}
	return out
}
