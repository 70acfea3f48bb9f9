package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// Register installs every custom validation used by request contracts.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
	_ = validate.RegisterValidation("uniquenames", UniqueNames)
	_ = validate.RegisterValidation("notblank", NotBlank)
}

// New returns a validator that reports fields by their json names.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonName)
	Register(validate)
	return validate
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// UniqueNames applies to a slice of structs (or pointers to structs) with a
// string field called Name. Names are compared case-insensitively.
func UniqueNames(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'uniquenames' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	seen := make(map[string]bool, slice.Len())
	for i := 0; i < slice.Len(); i++ {
		elem := reflect.Indirect(slice.Index(i))
		if elem.Kind() != reflect.Struct {
			return false
		}

		name := elem.FieldByName("Name")
		if !name.IsValid() || name.Kind() != reflect.String {
			return false
		}

		key := strings.ToLower(strings.TrimSpace(name.String()))
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}
