package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aplicatto/showcase-service/internal/models"
)

// Validator wraps go-playground struct validation plus the catalog
// domain rules (closed role/state/level enums).
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with all domain rules registered.
func New() *Validator {
	validate := validator.New()

	// Report fields under their wire names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerDomainRules()

	return v
}

// Validate validates any tagged struct and returns the accumulated
// field errors, or nil when the value is valid.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) registerDomainRules() {
	_ = v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})

	_ = v.validate.RegisterValidation("project_state", func(fl validator.FieldLevel) bool {
		return models.ProjectState(fl.Field().String()).Valid()
	})

	_ = v.validate.RegisterValidation("course_level", func(fl validator.FieldLevel) bool {
		return models.CourseLevel(fl.Field().String()).Valid()
	})
}
