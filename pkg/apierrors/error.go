package apierrors

import (
	"encoding/json"
	"fmt"
	"strings"

	"taskboard/pkg/translator"
)

// JsonErr is the failure half of the response envelope: {"error": ..., "status": false}.
// Error is a translated message or a map of field name to translated messages.
type JsonErr struct {
	ErrDetails any  `json:"error"`
	Status     bool `json:"status"`
}

// FieldErrors maps a payload field to its translated messages.
type FieldErrors map[string][]string

// Violation is an untranslated validation failure on one field.
type Violation struct {
	Field  string
	MsgKey string
	Param  string
}

func (e JsonErr) Error() string {
	switch details := e.ErrDetails.(type) {
	case string:
		return details
	case FieldErrors:
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Sprintf("%v", details)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", details)
	}
}

// CreateError generates a JsonErr with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: GetTransErrorMsg(msgKey, lang)}
}

// CreateValidationError translates violations and groups them by field, keeping their order.
func CreateValidationError(violations []Violation, lang string) JsonErr {
	fields := make(FieldErrors, len(violations))
	for _, v := range violations {
		field := v.Field
		if field == "" {
			field = NonFieldErrors
		}
		var data map[string]any
		if v.Param != "" {
			data = map[string]any{"Param": v.Param}
		}
		fields[field] = append(fields[field], translator.Localize(v.MsgKey, lang, data))
	}
	return JsonErr{ErrDetails: fields}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang, nil)
}

// FormatIDs renders ids the way validation messages quote them, e.g. "7", "9".
func FormatIDs(ids []uint64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%q", fmt.Sprint(id)))
	}
	return strings.Join(parts, ", ")
}
