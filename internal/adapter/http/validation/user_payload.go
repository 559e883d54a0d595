package validation

import (
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func BuildRegisterUserInput(req dto.RegisterRequest) (domain.RegisterUserInput, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	// Passwords keep their spaces, but an all-space password counts as blank.
	var violations Errors
	if req.Password != "" && strings.TrimSpace(req.Password) == "" {
		violations.add("password", MsgBlank, "")
	}

	if err := Struct(req); err != nil {
		structErrs, ok := err.(Errors)
		if !ok {
			return domain.RegisterUserInput{}, err
		}
		violations = violations.merge(structErrs)
	}
	if len(violations) > 0 {
		return domain.RegisterUserInput{}, violations
	}

	input := domain.RegisterUserInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		Designation: domain.DefaultDesignation,
	}

	if req.PhoneNumber != nil {
		value := strings.TrimSpace(*req.PhoneNumber)
		if value != "" {
			input.PhoneNumber = &value
		}
	}
	if req.Designation != nil && strings.TrimSpace(*req.Designation) != "" {
		input.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.AccessLevel != nil {
		input.AccessLevel = uint32(*req.AccessLevel)
	}

	return input, nil
}
