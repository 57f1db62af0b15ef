package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"quiz-editor/internal/domain"
	"quiz-editor/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names so error locations match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ParseEditQuizRequest decodes and validates an edit request body.
func (v *Validator) ParseEditQuizRequest(body []byte) (*dto.EditQuizRequest, error) {
	var req dto.EditQuizRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, decodeErrors(err)
	}
	if errs := v.ValidateStruct(&req); len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}

// ValidateStruct runs the struct's validate tags and converts failures to
// field-level errors located under "body".
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(err.Error(), "body")}
	}

	errs := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		loc := namespaceToLoc(fe.Namespace())
		switch fe.Tag() {
		case "required":
			errs = append(errs, domain.NewMissingFieldError(loc...))
		default:
			errs = append(errs, domain.NewInvalidFormatError("failed on the '"+fe.Tag()+"' rule", loc...))
		}
	}
	return errs
}

// ParseQuizID validates a path parameter holding a quiz id.
func (v *Validator) ParseQuizID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidTypeError("integer", "path", "id")}
	}
	return id, nil
}

// namespaceToLoc turns "EditQuizRequest.questions[0].answers[1].answer_text"
// into ["body", "questions", 0, "answers", 1, "answer_text"].
func namespaceToLoc(ns string) []interface{} {
	loc := []interface{}{"body"}
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		// first segment is the root struct type
		parts = parts[1:]
	}
	for _, part := range parts {
		name := part
		var indexes []interface{}
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 || !strings.HasSuffix(name, "]") {
				break
			}
			closeIdx := strings.IndexByte(name[open:], ']') + open
			if n, err := strconv.Atoi(name[open+1 : closeIdx]); err == nil {
				indexes = append(indexes, n)
			}
			rest := name[closeIdx+1:]
			name = name[:open] + rest
		}
		if name != "" {
			loc = append(loc, name)
		}
		loc = append(loc, indexes...)
	}
	return loc
}

func decodeErrors(err error) domain.ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []interface{}{"body"}
		if typeErr.Field != "" {
			for _, p := range strings.Split(typeErr.Field, ".") {
				loc = append(loc, p)
			}
		}
		return domain.ValidationErrors{domain.NewInvalidTypeError(expectedTypeName(typeErr.Type), loc...)}
	}

	var tsErr *dto.TimestampError
	if errors.As(err, &tsErr) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("invalid datetime format", "body", "created_at")}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		if syntaxErr.Offset == 0 || strings.Contains(syntaxErr.Error(), "unexpected end") {
			return domain.ValidationErrors{domain.NewMissingFieldError("body")}
		}
		return domain.ValidationErrors{{
			Loc:  []interface{}{"body", syntaxErr.Offset},
			Msg:  "JSON decode error",
			Type: "value_error.jsondecode",
		}}
	}

	return domain.ValidationErrors{{
		Loc:  []interface{}{"body"},
		Msg:  err.Error(),
		Type: "value_error.jsondecode",
	}}
}

func expectedTypeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Struct, reflect.Map:
		return "dict"
	default:
		return t.Kind().String()
	}
}
