package validators

import (
	"fmt"
	"strings"
)

// fieldMessages overrides the generic message of a rule for a specific field.
// Keys are "<field>.<tag>".
var fieldMessages = map[string]string{
	"first_name.empty": "first_name can not be empty",
	"last_name.empty":  "last_name can not be empty",
	"email.empty":      "email can not be empty",
	"mobile.empty":     "mobile can not be empty",
	"username.empty":   "username can not be empty",
	"password.empty":   "password can not be empty",

	"user_type.empty": "user_type must be one of [admin, user] and can not be empty",
	"user_type.oneof": "user_type must be one of [admin, user] and can not be empty",
	"status.empty":    "status must be one of [active, inactive] and can not be empty",
	"status.oneof":    "status must be one of [active, inactive] and can not be empty",

	"is_published.empty": "is_published must be one of [active, inactive] and can not be empty",
	"is_published.oneof": "is_published must be one of [active, inactive] and can not be empty",

	"title.empty":       "Title can not be empty",
	"title.min":         "Title length must be at least 5 characters long.",
	"title.max":         "Title length must not exceed 50 characters long.",
	"description.empty": "description can not be empty",
	"description.min":   "description length must be at least 10 characters long.",
}

func newFieldError(field, tag, param string) *FieldError {
	return &FieldError{
		Field:   field,
		Tag:     tag,
		Param:   param,
		Message: message(field, tag, param),
	}
}

func message(field, tag, param string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}

	switch tag {
	case TagRequired:
		return fmt.Sprintf("%q is required", field)
	case TagEmpty:
		return fmt.Sprintf("%q is not allowed to be empty", field)
	case TagUnknown:
		return fmt.Sprintf("%q is not allowed", field)
	case TagType:
		return fmt.Sprintf("%q must be a string", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "len":
		return fmt.Sprintf("%q length must be %s characters long", field, param)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, param)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(param), ", "))
	case "hex24":
		return fmt.Sprintf("%q must be a 24 character hexadecimal string", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
