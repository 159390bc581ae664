package suite

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// Well-known property keys.
const (
	// PropertySkipReason holds the reason a test is not runnable, skipped or ignored.
	PropertySkipReason = "skip_reason"
	// PropertyCategory groups tests for selection.
	PropertyCategory = "category"
	// PropertyDescription carries a human readable description.
	PropertyDescription = "description"
)

// PropertyBag is a multimap of test properties. Keys keep their first-insertion
// order and every value added under a key is retained, including duplicates.
type PropertyBag struct {
	keys   []string
	values map[string][]any
}

// NewPropertyBag creates an empty property bag.
func NewPropertyBag() *PropertyBag {
	return &PropertyBag{
		values: make(map[string][]any),
	}
}

// Add appends a value under key, keeping any existing values.
func (b *PropertyBag) Add(key string, value any) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = append(b.values[key], value)
}

// Set replaces all values under key with a single value.
func (b *PropertyBag) Set(key string, value any) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = []any{value}
}

// Get returns the values under key in insertion order.
func (b *PropertyBag) Get(key string) []any {
	if b == nil {
		return nil
	}
	return b.values[key]
}

// First returns the first value under key.
func (b *PropertyBag) First(key string) (any, bool) {
	values := b.Get(key)
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

// Keys returns the keys in first-insertion order.
func (b *PropertyBag) Keys() []string {
	if b == nil {
		return nil
	}
	return b.keys
}

// Len returns the number of distinct keys.
func (b *PropertyBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Merge copies every (key, value) pair from other, preserving multiplicity.
func (b *PropertyBag) Merge(other *PropertyBag) {
	for _, key := range other.Keys() {
		for _, value := range other.Get(key) {
			b.Add(key, value)
		}
	}
}

// Strings returns the values under key rendered as strings.
func (b *PropertyBag) Strings(key string) []string {
	return lo.Map(b.Get(key), func(v any, _ int) string {
		return fmt.Sprint(v)
	})
}

// MarshalJSON renders the bag as an object of value arrays in key insertion order.
func (b *PropertyBag) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(b.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
