package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// DecodeStrict decodes an untyped JSON object into dst, a pointer to a
// payload struct. Keys not declared by dst fail with [TagUnknown]; the
// first unknown key in lexical order is reported.
func DecodeStrict(payload map[string]json.RawMessage, dst any) error {
	return decode(payload, dst, true)
}

// Decode decodes an untyped JSON object into dst, a pointer to a payload
// struct, silently dropping keys dst does not declare.
func Decode(payload map[string]json.RawMessage, dst any) error {
	return decode(payload, dst, false)
}

func decode(payload map[string]json.RawMessage, dst any, strict bool) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return ErrUnsupportedType
	}
	val := ptr.Elem()
	typ := val.Type()
	declared := jsonFieldNames(typ)

	if strict {
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if _, ok := declared[key]; !ok {
				return newFieldError(key, TagUnknown, "")
			}
		}
	}

	// fields are decoded in declaration order so the reported type error is
	// deterministic
	for i := range typ.NumField() {
		name := jsonName(typ.Field(i))
		raw, ok := payload[name]
		if name == "" || !ok {
			continue
		}

		field := val.Field(i)
		if err := json.Unmarshal(raw, field.Addr().Interface()); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return newFieldError(name, TagType, "")
			}
			return fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
		}
	}

	return nil
}

// PayloadKeys returns the keys of payload that belong to allowed, in the
// order of allowed.
func PayloadKeys(payload map[string]json.RawMessage, allowed []string) []string {
	keys := make([]string, 0, len(allowed))
	for _, key := range allowed {
		if _, ok := payload[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
