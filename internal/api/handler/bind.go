package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const msgInvalidPayload = "invalid payload"

// bindAndValidate decodes the body into req and runs the validator. A JSON
// value of the wrong type is reported as a field error next to the
// validator's findings. Malformed JSON is rejected as a whole.
func bindAndValidate(c echo.Context, req any) error {
	var typeErr *json.UnmarshalTypeError
	if err := c.Bind(req); err != nil {
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
		}
	}

	err := c.Validate(req)
	if typeErr == nil {
		return err
	}

	out := &ValidationError{Fields: []FieldError{{
		Field:   typeErr.Field,
		Message: typeErr.Field + " has an invalid type",
	}}}
	var ve *ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			if f.Field != typeErr.Field {
				out.Fields = append(out.Fields, f)
			}
		}
	} else if err != nil {
		return err
	}
	return out
}
