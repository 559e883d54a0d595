package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	var violations Errors

	name := strings.TrimSpace(req.Name)
	checkRequiredText(&violations, raw, "name", name)
	description := strings.TrimSpace(req.Description)
	checkRequiredText(&violations, raw, "description", description)

	for _, field := range []string{"task_type", "status", "assigned_user_ids"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			violations.add(field, MsgNull, "")
		}
	}
	checkChoice(&violations, "task_type", req.TaskType)
	checkChoice(&violations, "status", req.Status)

	if err := Struct(req); err != nil {
		structErrs, ok := err.(Errors)
		if !ok {
			return domain.CreateTaskInput{}, err
		}
		violations = violations.merge(structErrs)
	}

	if len(violations) > 0 {
		return domain.CreateTaskInput{}, violations
	}

	input := domain.CreateTaskInput{
		Name:            name,
		Description:     description,
		TaskType:        domain.TaskTypeFeature,
		Status:          domain.TaskStatusPending,
		AssignedUserIDs: req.AssignedUserIDs,
	}
	if req.TaskType != nil {
		input.TaskType = domain.TaskType(*req.TaskType)
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, Errors{{Field: "", MsgKey: MsgEmptyUpdate}}
	}

	var violations Errors
	for _, field := range []string{"name", "description", "task_type", "status"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			violations.add(field, MsgNull, "")
		}
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			violations.add("name", MsgBlank, "")
		}
		name = &value
	}

	var description *string
	if req.Description != nil {
		value := strings.TrimSpace(*req.Description)
		if value == "" {
			violations.add("description", MsgBlank, "")
		}
		description = &value
	}

	checkChoice(&violations, "task_type", req.TaskType)
	checkChoice(&violations, "status", req.Status)

	if err := Struct(req); err != nil {
		structErrs, ok := err.(Errors)
		if !ok {
			return domain.UpdateTaskInput{}, err
		}
		violations = violations.merge(structErrs)
	}

	if len(violations) > 0 {
		return domain.UpdateTaskInput{}, violations
	}

	input := domain.UpdateTaskInput{
		Name:        name,
		Description: description,
	}
	if req.TaskType != nil {
		value := domain.TaskType(*req.TaskType)
		input.TaskType = &value
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}

	return input, nil
}

func checkRequiredText(violations *Errors, raw map[string]json.RawMessage, field, value string) {
	switch {
	case !hasJSONField(raw, field):
		violations.add(field, MsgRequired, "")
	case isJSONNull(raw[field]):
		violations.add(field, MsgNull, "")
	case value == "":
		violations.add(field, MsgBlank, "")
	}
}

// checkChoice flags an explicit empty choice. The oneof tag also fails on it, and merge drops
// that second message.
func checkChoice(violations *Errors, field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		violations.add(field, MsgBlank, "")
	}
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "task_type") ||
		hasJSONField(raw, "status")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
