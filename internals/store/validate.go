package store

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the `validate` tags of rec.
func Validate[T Model[T]](desc Descriptor[T], rec T) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{Kind: desc.Kind}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{Path: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
