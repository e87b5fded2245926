package helpers

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ValidationErrorData holds structured validation error information
type ValidationErrorData struct {
	Fields map[string]string `json:"fields"`
}

// EncodeValidationError encodes field validation errors into a JSON string
// This can be embedded in gRPC error messages for structured error handling
func EncodeValidationError(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	jsonData, err := json.Marshal(ValidationErrorData{Fields: fields})
	if err != nil {
		return FormatValidationErrorMessage(fields, GetDefaultLocale())
	}
	return string(jsonData)
}

// DecodeValidationError decodes a JSON string into field validation errors
// Returns the fields map and a boolean indicating if decoding was successful
func DecodeValidationError(errorMsg string) (map[string]string, bool) {
	var data ValidationErrorData
	if err := json.Unmarshal([]byte(errorMsg), &data); err != nil || len(data.Fields) == 0 {
		return nil, false
	}
	return data.Fields, true
}

// FormatValidationErrorMessage creates a user-friendly error message from field errors.
// Fields are visited in name order so the message is stable.
func FormatValidationErrorMessage(fields map[string]string, locale string) string {
	if len(fields) == 0 {
		return fmt.Sprintf(GetLocaleTranslations(locale).Invalid, "request")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fields[names[0]]
}
