package validation

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialSet names which credential fields a call site requires.
type CredentialSet uint8

const (
	// LoginCredentials requires email and password.
	LoginCredentials CredentialSet = iota + 1
	// EmailCredentials requires only email; used to resolve a target user.
	EmailCredentials
)

func (s CredentialSet) Fields() []string {
	switch s {
	case LoginCredentials:
		return []string{FieldEmail, FieldPassword}
	case EmailCredentials:
		return []string{FieldEmail}
	default:
		return nil
	}
}

var credentialRules = map[string]string{
	FieldEmail: "email,max=100",
}

// Payload is an undecoded credential payload from a JSON body or a query string.
type Payload map[string]any

// BindPayload reads a JSON object body. A missing body yields an empty payload.
func BindPayload(c *gin.Context) (Payload, error) {
	var payload Payload
	if err := BindJSON(c, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = Payload{}
	}
	return payload, nil
}

// PayloadFromQuery keeps the first value of each query parameter.
func PayloadFromQuery(values url.Values) Payload {
	payload := make(Payload, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			payload[key] = vals[0]
		}
	}
	return payload
}

// DecodeCredentials validates the fields named by set and ignores everything else in payload.
// Failures come back as Errors listing each requested field that is missing or malformed.
func DecodeCredentials(payload Payload, set CredentialSet) (domain.Credentials, error) {
	var violations Errors
	values := make(map[string]string, 2)

	for _, field := range set.Fields() {
		raw, ok := payload[field]
		if !ok || raw == nil {
			violations.add(field, MsgRequired, "")
			continue
		}

		value, ok := raw.(string)
		if !ok {
			violations.add(field, MsgType, "string")
			continue
		}
		if field == FieldEmail {
			value = strings.TrimSpace(value)
		}
		if strings.TrimSpace(value) == "" {
			violations.add(field, MsgBlank, "")
			continue
		}

		if rules, ok := credentialRules[field]; ok {
			if err := validate.Var(value, rules); err != nil {
				var fieldErrs validator.ValidationErrors
				if !errors.As(err, &fieldErrs) {
					return domain.Credentials{}, err
				}
				for _, fe := range fieldErrs {
					violations = append(violations, fromFieldError(field, fe))
				}
				continue
			}
		}

		values[field] = value
	}

	if len(violations) > 0 {
		return domain.Credentials{}, violations
	}

	return domain.Credentials{
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	}, nil
}

func DecodeLogin(payload Payload) (dto.LoginRequest, error) {
	creds, err := DecodeCredentials(payload, LoginCredentials)
	if err != nil {
		return dto.LoginRequest{}, err
	}
	return dto.LoginRequest{Email: creds.Email, Password: creds.Password}, nil
}

func DecodeEmailOnly(payload Payload) (dto.EmailOnlyRequest, error) {
	creds, err := DecodeCredentials(payload, EmailCredentials)
	if err != nil {
		return dto.EmailOnlyRequest{}, err
	}
	return dto.EmailOnlyRequest{Email: creds.Email}, nil
}
