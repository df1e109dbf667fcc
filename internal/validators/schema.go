package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/go-playground/validator/v10"
)

// SchemaValidator validates payload structs declared with `validate` tags.
//
// Fields are checked one by one in declaration order and validation stops
// at the first failure. Pointer fields model optional JSON keys: a nil
// pointer is an absent key.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator constructs a [SchemaValidator] with the custom rules
// used by the payload models registered:
//   - hex24: exactly 24 hexadecimal characters
func NewSchemaValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("hex24", func(fl validator.FieldLevel) bool {
		return utils.IsValidID(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register hex24 validation: %v", err))
	}

	return &SchemaValidator{validate: v}
}

// Validate checks obj against its `validate` tags.
//
// Without fields every tagged field is checked and a nil pointer on a
// required field fails with [TagRequired]. With fields only the named JSON
// fields are checked and nil pointers are skipped, which is the partial
// update mode.
//
// Returns nil, a [*FieldError] for the first failing field,
// [ErrUnsupportedType] or [ErrUnknownField].
func (v *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val, err := structValue(obj)
	if err != nil {
		return err
	}
	typ := val.Type()

	only := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		only[f] = struct{}{}
	}
	if len(only) > 0 {
		declared := jsonFieldNames(typ)
		for f := range only {
			if _, ok := declared[f]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)
		name := jsonName(sf)
		rules := sf.Tag.Get("validate")
		if name == "" || rules == "" {
			continue
		}
		if _, ok := only[name]; len(only) > 0 && !ok {
			continue
		}

		fv := val.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				if len(only) == 0 && hasRule(rules, "required") {
					return newFieldError(name, TagRequired, "")
				}
				continue
			}
			fv = fv.Elem()
		}

		if err := v.validate.VarCtx(ctx, fv.Interface(), rules); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
				fe := validationErrs[0]
				tag := fe.Tag()
				if tag == "required" {
					tag = TagEmpty
				}
				return newFieldError(name, tag, fe.Param())
			}
			return fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
		}
	}

	return nil
}

func structValue(obj any) (reflect.Value, error) {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return reflect.Value{}, ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, ErrUnsupportedType
	}
	return val, nil
}

// jsonName returns the JSON key of a struct field, or "" when the field is
// not serialized.
func jsonName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func jsonFieldNames(typ reflect.Type) map[string]int {
	names := make(map[string]int, typ.NumField())
	for i := range typ.NumField() {
		if name := jsonName(typ.Field(i)); name != "" {
			names[name] = i
		}
	}
	return names
}

func hasRule(rules, rule string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == rule {
			return true
		}
	}
	return false
}
