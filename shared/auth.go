package shared

import (
	"fmt"
	"sort"
	"strings"
)

// Session holds the two opaque bearer tokens issued on sign in or sign up.
// An empty string means the token is absent.
type Session struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type ApiErrorType string

const (
	ApiErrorTypeInvalidToken ApiErrorType = "invalid_token"
	ApiErrorTypeForbidden    ApiErrorType = "forbidden"
	ApiErrorTypeNotFound     ApiErrorType = "not_found"
	ApiErrorTypeValidation   ApiErrorType = "validation"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`

	// only set for validation errors
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

func (e *ApiError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status code %d)", e.Msg, e.Status)
	}
	return e.Msg
}

// FlattenFieldErrors renders field errors as "field: msg; field: msg" in
// stable field order.
func FlattenFieldErrors(fieldErrors map[string][]string) string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		msgs := strings.Join(fieldErrors[field], " ")
		if field == "non_field_errors" || field == "detail" {
			parts = append(parts, msgs)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, msgs))
	}
	return strings.Join(parts, "; ")
}
