package profile

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers the profile validators on validate.
func RegisterValidators(validate *validator.Validate, _ ut.Translator) {
	validate.RegisterStructValidation(updateStudentStructValidation, UpdateStudent{})
}

// omitempty skips explicit zero values on pointers, which still have to satisfy the field rules.
func updateStudentStructValidation(sl validator.StructLevel) {
	upd := sl.Current().Interface().(UpdateStudent)

	if upd.Name != nil && *upd.Name == "" {
		sl.ReportError(*upd.Name, "name", "Name", "notblank", "")
	}
	if upd.Graduation != nil && *upd.Graduation == 0 {
		sl.ReportError(*upd.Graduation, "graduation", "Graduation", "min", "1900")
	}
	if upd.SAT != nil && *upd.SAT == 0 {
		sl.ReportError(*upd.SAT, "sat", "SAT", "min", "400")
	}
	if upd.ACT != nil && *upd.ACT == 0 {
		sl.ReportError(*upd.ACT, "act", "ACT", "min", "1")
	}
}
