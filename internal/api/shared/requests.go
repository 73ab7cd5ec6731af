package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-wide validator instance. Field names in
// validation errors come from json tags so error payloads use the same
// names as the wire format (nome, cidade_id, ...).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessages converts a validator error into the legacy
// field -> messages map used by the erros response property.
// Non-validator errors produce a single generic entry.
func ValidationMessages(err error) map[string][]string {
	messages := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		messages["body"] = []string{"invalid request body"}
		return messages
	}

	for _, fe := range verrs {
		field := fe.Field()
		messages[field] = append(messages[field], validationMessage(fe))
	}
	return messages
}

// validationMessage renders one field error in the wording the API has
// always used.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " field is required"
	case "email":
		return "The " + fe.Field() + " field must be a valid email address"
	case "url":
		return "The " + fe.Field() + " field must be a valid URL"
	case "uuid":
		return "The " + fe.Field() + " field must be a valid ID"
	case "max":
		return "The " + fe.Field() + " field may not be greater than " + fe.Param() + " characters"
	default:
		return "The " + fe.Field() + " field is invalid"
	}
}
