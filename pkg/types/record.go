package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
)

// Reserved JSON-LD keys written by the record builder.
const (
	KeyContext = "@context"
	KeyType    = "@type"
	KeyID      = "@id"
)

// SchemaContext is the @context value of every generated record.
const SchemaContext = "https://schema.org"

// Record is a string-keyed map that remembers insertion order. It marshals
// to a JSON object with keys in that order. Setting an existing key replaces
// its value and keeps its position.
//
// The zero value is not usable; create records with NewRecord.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordFromMap copies m into a new record with keys in sorted order.
func RecordFromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// Set stores v under key.
func (r *Record) Set(key string, v any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (r *Record) Range(fn func(key string, v any) bool) {
	if r == nil {
		return
	}
	for _, k := range r.keys {
		if !fn(k, r.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (r *Record) Clone() *Record {
	out := NewRecord()
	r.Range(func(k string, v any) bool {
		out.Set(k, v)
		return true
	})
	return out
}

// String returns the record's compact JSON text.
func (r *Record) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<record: %v>", err)
	}
	return string(b)
}

// MarshalJSON writes the record as a JSON object in insertion order. HTML
// characters are not escaped.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.MarshalWithOption(k, json.DisableHTMLEscape())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.MarshalWithOption(r.values[k], json.DisableHTMLEscape())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping document order. Nested objects
// become *Record, arrays []any, and numbers json.Number.
func (r *Record) UnmarshalJSON(data []byte) error {
	v, err := DecodeOrdered(data)
	if err != nil {
		return err
	}
	rec, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("%w: want object, got %T", ErrInvalidJSON, v)
	}
	*r = *rec
	return nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

// DecodeOrdered decodes one JSON value. Objects decode to *Record in
// document order; a repeated key keeps its first position and its last
// value. Arrays decode to []any and numbers to json.Number. Input that is
// not exactly one well-formed JSON value is ErrInvalidJSON.
func DecodeOrdered(data []byte) (any, error) {
	// The token walk below does not check separators, so syntax is checked
	// up front.
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidJSON)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		rec := NewRecord()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, want string", kt)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return rec, nil
	case '[':
		items := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}
