// Package validator evaluates declarative per-field rules against a request
// payload. Routes attach an ordered rules list; failures come back as a
// structured {field, message} list.
package validator

import (
	"net/mail"
	"strings"
)

// FieldError describes a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckFunc reports whether a field value passes.
type CheckFunc func(value any) bool

// Rule binds a field name to a check and the message returned on failure.
type Rule struct {
	Field   string
	Check   CheckFunc
	Message string
}

// Apply evaluates every rule against the payload and collects all failures
// in rule order.
func Apply(rules []Rule, payload map[string]any) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		if !rule.Check(payload[rule.Field]) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

// NotEmpty requires a non-blank string value.
func NotEmpty() CheckFunc {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	}
}

// IsEmail requires a parseable email address.
func IsEmail() CheckFunc {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		_, err := mail.ParseAddress(s)
		return err == nil
	}
}

// MinLength requires a string of at least n bytes.
func MinLength(n int) CheckFunc {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && len(s) >= n
	}
}
