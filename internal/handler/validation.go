package handler

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

func init() {
	// В нарушениях валидации поля называются так же, как в JSON
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
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
	}
}

// bindingViolations переводит ошибку ShouldBindJSON в список нарушений
func bindingViolations(err error) []apperrors.FieldViolation {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		violations := make([]apperrors.FieldViolation, 0, len(validationErrs))
		for _, fe := range validationErrs {
			violations = append(violations, apperrors.FieldViolation{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return violations
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if idx := strings.LastIndex(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		return []apperrors.FieldViolation{{Field: field, Rule: "type", Param: typeErr.Type.String()}}
	}

	if errors.Is(err, io.EOF) {
		return []apperrors.FieldViolation{{Field: "body", Rule: "required"}}
	}

	return []apperrors.FieldViolation{{Field: "body", Rule: "json"}}
}
