// Package forms is the single parse-and-validate boundary for untyped input.
// Raw field values are coerced and checked here exactly once; everything
// downstream consumes the normalized typed result.
package forms

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// Any reports whether at least one field failed validation.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Add records a message for a field, keeping the first message per field.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error keys use json tag names so they match the submitted field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate runs declarative struct validation and returns one message per
// invalid field, keyed by field name. A nil map means the value is valid.
func Validate(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"_": err.Error()}
	}
	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(fieldKey(fe), message(fe))
	}
	return out
}

// fieldKey strips the root struct name from the namespace, leaving keys like
// "name" or "items[2].quantity".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid identifier"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return "is invalid"
	}
}

// DecimalField coerces a raw string into a decimal amount.
func DecimalField(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("forms: not a number: %q", raw)
	}
	return value, nil
}

// IntField coerces a raw string into an integer.
func IntField(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("forms: not an integer: %q", raw)
	}
	return value, nil
}
