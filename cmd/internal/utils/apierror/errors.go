package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError         = NewSimple(404, "Resource not found")
	InvalidCompanyIDError = NewSimple(400, "The provided company ID is invalid")
	InvalidIDError        = NewSimple(400, "The provided ID is invalid")

	/*
	 * Menu planning
	 */
	MenuAlreadyPlannedError  = NewSimple(409, "A menu for next week was already planned for this company")
	UpstreamUnavailableError = NewSimple(502, "The document store is unavailable, try again later")

	/*
	 * Recipe images
	 */
	ImagesDisabledError  = NewSimple(503, "Image uploads are not configured")
	MissingImageError    = NewSimple(400, "Missing 'imagem' file")
	InvalidImageExtError = NewSimple(400, "Unsupported image type, allowed: png, jpg, jpeg, webp")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := fieldPath(fe)

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gt", "gte":
			problems[field] = append(problems[field], "Value must be greater than "+orEqual(fe.Tag())+fe.Param())
		case "url":
			problems[field] = append(problems[field], "Value must be a valid URL")
		case "uniquenames":
			problems[field] = append(problems[field], "Each ingredient may appear only once")
		case "len":
			problems[field] = append(problems[field], "Must contain exactly "+fe.Param()+" items")
		case "datetime":
			problems[field] = append(problems[field], "Value must be a date formatted as yyyy-MM-dd")
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain spaces")
		case "notblank":
			problems[field] = append(problems[field], "Value must not be blank")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

// fieldPath turns "RecipeRequest.ingredients[0].name" into
// "ingredients[0].name". Field names come from the json tags.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = fe.Field()
	}
	return strings.ToLower(ns)
}

func orEqual(tag string) string {
	if tag == "gte" {
		return "or equal to "
	}
	return ""
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewFileTooLargeError(maxBytes int64) *APIError {
	return NewSimple(http.StatusRequestEntityTooLarge, "File is too large, max: %d bytes", maxBytes)
}
