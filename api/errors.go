package api

import (
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"strings"

	"socialnet-cli/shared"
)

// HandleApiError turns a non-2xx response into an ApiError. The server
// speaks Django REST framework: {"detail": "..."} for most failures and
// {"field": ["msg", ...]} for validation failures.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	apiErr := &shared.ApiError{
		Type:   errorTypeForStatus(r.StatusCode),
		Status: r.StatusCode,
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		apiErr.Msg = strings.TrimSpace(string(errBody))
		if apiErr.Msg == "" {
			apiErr.Msg = http.StatusText(r.StatusCode)
		}
		return apiErr
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(errBody, &body); err != nil {
		log.Printf("Error unmarshalling JSON: %v\n", err)
		apiErr.Msg = strings.TrimSpace(string(errBody))
		return apiErr
	}

	if raw, ok := body["detail"]; ok {
		var detail string
		if json.Unmarshal(raw, &detail) == nil {
			apiErr.Msg = detail
		}
	}

	if apiErr.Type == shared.ApiErrorTypeValidation {
		apiErr.FieldErrors = decodeFieldErrors(body)
		if apiErr.Msg == "" {
			apiErr.Msg = shared.FlattenFieldErrors(apiErr.FieldErrors)
		}
	}

	if apiErr.Msg == "" {
		apiErr.Msg = http.StatusText(r.StatusCode)
	}

	return apiErr
}

func errorTypeForStatus(status int) shared.ApiErrorType {
	switch status {
	case http.StatusUnauthorized:
		return shared.ApiErrorTypeInvalidToken
	case http.StatusForbidden:
		return shared.ApiErrorTypeForbidden
	case http.StatusNotFound:
		return shared.ApiErrorTypeNotFound
	case http.StatusBadRequest:
		return shared.ApiErrorTypeValidation
	}
	return shared.ApiErrorTypeOther
}

// field values are either a list of messages or a single message
func decodeFieldErrors(body map[string]json.RawMessage) map[string][]string {
	res := map[string][]string{}
	for field, raw := range body {
		if field == "detail" {
			continue
		}

		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil {
			res[field] = msgs
			continue
		}

		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			res[field] = []string{msg}
		}
	}
	return res
}

func requestError(err error) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "error sending request: " + err.Error()}
}

func decodeError(err error) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "error decoding response: " + err.Error()}
}
