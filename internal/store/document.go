package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// IDField is the attribute holding the numeric record id in every table.
const IDField = "id"

// ID returns the numeric id of d.
func (d Document) ID() (int64, error) {
	v, ok := d[IDField]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformedDocument, IDField)
	}

	id, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an integer: %v", ErrMalformedDocument, IDField, v)
	}

	return id, nil
}

// Project returns a copy of d holding only fields. An empty field list
// returns a full copy.
func (d Document) Project(fields ...string) Document {
	if len(fields) == 0 {
		out := make(Document, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out
	}

	out := make(Document, len(fields))
	for _, f := range fields {
		if v, ok := d[f]; ok {
			out[f] = v
		}
	}
	return out
}

// Matches reports whether every attribute of filter is present in d with an
// equal value. Numbers compare by value regardless of their Go type.
func (f Filter) Matches(d Document) bool {
	for k, want := range f {
		got, ok := d[k]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// SortByID orders docs by id ascending. Documents without a usable id sort
// last, in their original order.
func SortByID(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, errA := docs[i].ID()
		b, errB := docs[j].ID()
		switch {
		case errA != nil:
			return false
		case errB != nil:
			return true
		default:
			return a < b
		}
	})
}

// DecodeDocument parses a JSON object keeping numbers as json.Number so that
// large ids survive without float rounding.
func DecodeDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: null document", ErrMalformedDocument)
	}

	return doc, nil
}

func valuesEqual(a, b any) bool {
	if x, ok := toInt64(a); ok {
		if y, ok := toInt64(b); ok {
			return x == y
		}
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return x == y
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// Field readers used by the typed repositories. Each returns
// ErrMalformedDocument when the attribute has the wrong type.

func requiredInt64(d Document, key string) (int64, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformedDocument, key)
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an integer: %v", ErrMalformedDocument, key, v)
	}
	return n, nil
}

func optionalString(d Document, key string) (string, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string: %T", ErrMalformedDocument, key, v)
	}
	return s, nil
}

func requiredString(d Document, key string) (string, error) {
	s, err := optionalString(d, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedDocument, key)
	}
	return s, nil
}
