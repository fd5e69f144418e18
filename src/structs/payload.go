package structs

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Payload is an open, server-defined structured value, such as the "d"
// field of a gateway envelope or an untyped REST response. Only the
// fields a caller actually reads are decoded, through Decode.
type Payload map[string]any

// Has reports whether key is present and non-null.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the string at key, or "" when it is missing or not a
// string.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Decode converts the value at key into out, which must be a non-nil
// pointer. A missing or null key leaves out untouched. Struct fields are
// matched by their json tags.
func (p Payload) Decode(key string, out any) error {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	if err := DecodeValue(v, out); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// DecodeValue converts an untyped value (as produced by decoding JSON
// into any) into out.
func DecodeValue(in any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(in); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
