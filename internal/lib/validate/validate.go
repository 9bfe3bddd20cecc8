package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		instance = validator.New()

		// Report json tag names instead of Go field names
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return instance
}

func isStruct(v interface{}) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// Struct validates v against its `validate` tags. Field names in the
// returned error use json tag names; multiple violations are joined
// with "; ".
func Struct(v interface{}) error {
	if v == nil {
		return fmt.Errorf("validate: nil value")
	}
	if !isStruct(v) {
		return fmt.Errorf("validate: not a struct: %T", v)
	}

	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid email", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
