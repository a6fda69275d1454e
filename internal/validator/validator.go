package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/coursecast/grade-service/internal/errors"
	"github.com/coursecast/grade-service/internal/models"
)

// Validator validates request DTOs at the service boundary. Struct tags catch
// shape problems (missing fields, out-of-range weights) before a snapshot
// enters the pure calculation pipeline; semantic policy rules live in the
// engine itself.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a validator with the grading-specific custom tags registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)
	return &Validator{structValidator: structValidator}
}

// Validate runs struct-tag validation and converts failures to the shared
// ValidationErrors type so handlers can render field-level details.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if converted := apperrors.ToValidationErrors(err); len(converted) > 0 {
			return converted
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("drop_type", validateDropType)
	validate.RegisterValidation("grade_status", validateGradeStatus)

	// Report json field names so error messages match the wire format
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateDropType(fl validator.FieldLevel) bool {
	validTypes := []models.DropType{
		models.DropNone,
		models.DropLowest,
		models.DropHighest,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateGradeStatus(fl validator.FieldLevel) bool {
	validStatuses := []models.GradeStatus{
		models.StatusGraded,
		models.StatusMissing,
		models.StatusExcused,
		models.StatusUngraded,
	}

	value := fl.Field().String()
	for _, validStatus := range validStatuses {
		if string(validStatus) == value {
			return true
		}
	}
	return false
}
