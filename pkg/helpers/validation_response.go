package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// LocaleTranslations holds error message translations for different locales
type LocaleTranslations struct {
	Required      string
	Min           string
	Max           string
	Gte           string
	OneOf         string
	JalaliDate    string
	GregorianDate string
	CalendarDate  string
	Invalid       string
}

// translations holds locale-specific translations
var translations = map[string]LocaleTranslations{
	"en": {
		Required:      "The %s field is required",
		Min:           "The %s field must be at least %s characters",
		Max:           "The %s field must not exceed %s characters",
		Gte:           "The %s field must be at least %s",
		OneOf:         "The %s field must be one of: %s",
		JalaliDate:    "The %s field must be a valid Jalali date (yyyy/mm/dd)",
		GregorianDate: "The %s field must be a valid date (yyyy-mm-dd)",
		CalendarDate:  "The %s field must be a Jalali (yyyy/mm/dd) or Gregorian (yyyy-mm-dd) date",
		Invalid:       "The %s field is invalid",
	},
	"fa": {
		Required:      "فیلد %s الزامی است",
		Min:           "فیلد %s باید حداقل %s کاراکتر باشد",
		Max:           "فیلد %s نباید بیشتر از %s کاراکتر باشد",
		Gte:           "فیلد %s باید حداقل %s باشد",
		OneOf:         "فیلد %s باید یکی از موارد زیر باشد: %s",
		JalaliDate:    "فیلد %s باید یک تاریخ شمسی معتبر باشد (yyyy/mm/dd)",
		GregorianDate: "فیلد %s باید یک تاریخ میلادی معتبر باشد (yyyy-mm-dd)",
		CalendarDate:  "فیلد %s باید یک تاریخ شمسی یا میلادی معتبر باشد",
		Invalid:       "فیلد %s نامعتبر است",
	},
}

// GetDefaultLocale returns the default locale
func GetDefaultLocale() string {
	return "en"
}

// GetLocaleTranslations returns translations for a given locale, or default locale if not found
func GetLocaleTranslations(locale string) LocaleTranslations {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations[GetDefaultLocale()]
}

// LocaleFromRequest picks "fa" or "en" from the Accept-Language header.
func LocaleFromRequest(r *http.Request) string {
	lang := strings.ToLower(r.Header.Get("Accept-Language"))
	if strings.HasPrefix(lang, "fa") {
		return "fa"
	}
	return GetDefaultLocale()
}

// FormatValidationError formats a validator.FieldError into a localized error message
func FormatValidationError(fe validator.FieldError, locale string) string {
	t := GetLocaleTranslations(locale)
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(t.Required, fieldName)
	case "min":
		return fmt.Sprintf(t.Min, fieldName, fe.Param())
	case "max":
		return fmt.Sprintf(t.Max, fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf(t.Gte, fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf(t.OneOf, fieldName, fe.Param())
	case "jalali_date":
		return fmt.Sprintf(t.JalaliDate, fieldName)
	case "gregorian_date":
		return fmt.Sprintf(t.GregorianDate, fieldName)
	case "calendar_date":
		return fmt.Sprintf(t.CalendarDate, fieldName)
	default:
		return fmt.Sprintf(t.Invalid, fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	fieldName := strings.ToLower(fe.Field())
	return strings.ReplaceAll(fieldName, "_", " ")
}

// ValidationErrorsToMap converts validator errors to a field -> message map
func ValidationErrorsToMap(validationErrors validator.ValidationErrors, locale string) map[string]string {
	errors := make(map[string]string, len(validationErrors))
	for _, err := range validationErrors {
		errors[strings.ToLower(err.Field())] = FormatValidationError(err, locale)
	}
	return errors
}

// WriteValidationErrorResponse writes a validation error response in the specified format
// It accepts validator.ValidationErrors and formats them according to the locale
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors, locale string) {
	var firstMessage string
	if len(validationErrors) > 0 {
		firstMessage = FormatValidationError(validationErrors[0], locale)
	}

	writeValidationBody(w, ValidationErrorResponse{
		Message: firstMessage,
		Errors:  ValidationErrorsToMap(validationErrors, locale),
	})
}

// WriteValidationErrorResponseFromMap writes a validation error response from a map of field errors
// This is useful when you have custom validation errors not from go-playground validator
func WriteValidationErrorResponseFromMap(w http.ResponseWriter, fieldErrors map[string]string, locale string) {
	writeValidationBody(w, ValidationErrorResponse{
		Message: FormatValidationErrorMessage(fieldErrors, locale),
		Errors:  fieldErrors,
	})
}

func writeValidationBody(w http.ResponseWriter, response ValidationErrorResponse) {
	if response.Errors == nil {
		response.Errors = make(map[string]string)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
