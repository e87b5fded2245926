package helpers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard/pkg/jalali"
)

// CustomValidator wraps go-playground validator with calendar date rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with calendar date rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	v.RegisterValidation("jalali_date", validateJalaliDate)
	v.RegisterValidation("gregorian_date", validateGregorianDate)
	v.RegisterValidation("calendar_date", validateCalendarDate)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// jsonFieldName reports fields under their json names so error keys match the request body
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validateJalaliDate accepts yyyy/mm/dd in the Jalali calendar, Persian digits allowed
func validateJalaliDate(fl validator.FieldLevel) bool {
	_, err := ParseJalaliDate(fl.Field().String())
	return err == nil
}

// validateGregorianDate accepts yyyy-mm-dd
func validateGregorianDate(fl validator.FieldLevel) bool {
	_, err := jalali.ParseGregorian(NormalizePersianNumbers(fl.Field().String()))
	return err == nil
}

// validateCalendarDate accepts either of the above
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseCalendarDate(fl.Field().String())
	return err == nil
}
