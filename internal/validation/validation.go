// Package validation translates binding failures into the field-level error
// maps returned by the API: a 400 body of {"errors": {field: message}}.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// UseJSONFieldNames configures gin's validator to report struct fields by
// their json tag, so error maps are keyed the way clients sent the payload.
// Safe to call more than once.
func UseJSONFieldNames() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FieldErrors converts an error returned by ShouldBindJSON into a mapping
// from field name to a human-readable violation message.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		out[ute.Field] = fmt.Sprintf("%s must be a %s.", ute.Field, ute.Type.Kind())
		return out
	}

	out["body"] = "Invalid request body."
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field.", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email.", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", fe.Field())
	case "min":
		if fe.Param() == "1" {
			return fmt.Sprintf("%s may not be empty.", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
