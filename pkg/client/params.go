package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// The output-format parameter injected into every request. It tells the
// server to emit the length-prefixed FlatBuffers stream instead of JSON.
const (
	formatKey         = "format"
	formatFlatBuffers = "flatbuffers"
)

// Params is an ordered set of request parameters. Values may be scalars
// (strings, booleans, integers, floats) or slices of scalars; slices
// encode comma-joined, which is how the API expects multi-location
// batches like latitude=52.54,48.1,48.4.
//
// The zero value is ready to use. Params is not safe for concurrent
// mutation; each request operates on its own clone.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set stores value under key, keeping first-insertion order. Setting an
// existing key replaces its value in place.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.keys)
}

// Clone returns an independent copy. Values are shared, but the key set
// and ordering of the clone can be changed without affecting p.
func (p *Params) Clone() *Params {
	if p == nil {
		return NewParams()
	}
	c := &Params{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string]any, len(p.values)),
	}
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

// Encode serializes the parameters in insertion order as
// application/x-www-form-urlencoded, usable as a query string or a POST
// body. An unsupported value type is reported as an error before any
// request is made.
func (p *Params) Encode() (string, error) {
	if p == nil {
		return "", nil
	}
	var b strings.Builder
	for i, k := range p.keys {
		s, err := encodeValue(p.values[k])
		if err != nil {
			return "", fmt.Errorf("client: parameter %q: %w", k, err)
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(s))
	}
	return b.String(), nil
}

func encodeValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	case []string:
		return joinScalars(v)
	case []int:
		return joinScalars(v)
	case []float64:
		return joinScalars(v)
	case []float32:
		return joinScalars(v)
	case []any:
		return joinScalars(v)
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func joinScalars[T any](vs []T) (string, error) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		s, err := encodeValue(v)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}
