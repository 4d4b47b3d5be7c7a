package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// ValidationError carries every rejected field of a request. The error
// handler renders it as {"errores": [...]} with status 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in messages are the JSON names clients send.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// numericField is validated as its raw text; "" fails required.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(numericField); ok {
			return n.raw
		}
		return nil
	}, numericField{})
	mustRegister(v, "number_gt", numberGreaterThan)
	mustRegister(v, "integer_min", integerAtLeast)
	mustRegister(v, "categoria", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})

	return &echoValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// numberGreaterThan accepts a finite decimal strictly above the tag param.
func numberGreaterThan(fl validator.FieldLevel) bool {
	bound, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	f, ok := numericField{raw: fl.Field().String()}.float()
	return ok && f > bound
}

// integerAtLeast accepts a base-10 integer no lower than the tag param.
func integerAtLeast(fl validator.FieldLevel) bool {
	bound, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	i, ok := numericField{raw: fl.Field().String()}.int()
	return ok && i >= bound
}

// Validate satisfies the echo.Validator interface. All fields are checked;
// the result lists the first failing rule of each invalid field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fieldError(fe)})
	}
	return out
}

// fieldError converts a single validator.FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "categoria":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.Categories, ", "))
	case "number_gt":
		return fmt.Sprintf("%s must be a number greater than %s", field, fe.Param())
	case "integer_min":
		return fmt.Sprintf("%s must be an integer of at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
