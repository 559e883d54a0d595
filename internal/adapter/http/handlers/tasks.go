package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondValidation(c, err)
		return
	}
	var raw map[string]json.RawMessage
	if err := validation.BindJSON(c, &raw); err != nil {
		respondValidation(c, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		if !respondValidation(c, err) {
			zap.L().Error("failed to validate task payload", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		}
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		var unknown *domain.UnknownUsersError
		if errors.As(err, &unknown) {
			respondValidation(c, validation.Errors{{
				Field:  "assigned_user_ids",
				MsgKey: validation.MsgUnknownUsers,
				Param:  apierrors.FormatIDs(unknown.IDs),
			}})
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		return
	}

	// The caller is not stored on the task; it is only logged.
	fields := []zap.Field{zap.Uint64("task_id", task.ID)}
	if user, ok := middleware.GetUser(c); ok {
		fields = append(fields, zap.Uint64("caller_id", user.ID))
	}
	zap.L().Info("task created", fields...)

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Data:    mapper.ToTaskItem(task),
		Status:  true,
		Message: message(c, msgTaskCreated),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Data:   mapper.ToTaskItem(task),
		Status: true,
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondValidation(c, err)
		return
	}
	var raw map[string]json.RawMessage
	if err := validation.BindJSON(c, &raw); err != nil {
		respondValidation(c, err)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		if !respondValidation(c, err) {
			zap.L().Error("failed to validate task update", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask)
		}
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		case errors.Is(err, domain.ErrEmptyTaskUpdate):
			respondValidation(c, validation.Errors{{MsgKey: validation.MsgEmptyUpdate}})
		default:
			zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Data:    mapper.ToTaskItem(task),
		Status:  true,
		Message: message(c, msgTaskUpdated),
	})
}

// AssignTask checks the task before decoding the payload, so an unknown task answers 404
// even when the body is invalid.
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.taskService.GetTask(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to load task for assignment", zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailAssignTask)
		return
	}

	payload, err := validation.BindPayload(c)
	if err != nil {
		respondValidation(c, err)
		return
	}

	req, err := validation.DecodeEmailOnly(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	if _, err := h.taskService.AssignTask(ctx, taskID, req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
		case errors.Is(err, domain.ErrTaskNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		default:
			zap.L().Error("failed to assign task", zap.Uint64("task_id", taskID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailAssignTask)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: message(c, msgTaskAssigned),
		Status:  true,
	})
}

func (h *TaskHandler) ListUserTasks(c *gin.Context) {
	req, err := validation.DecodeEmailOnly(validation.PayloadFromQuery(c.Request.URL.Query()))
	if err != nil {
		respondValidation(c, err)
		return
	}

	tasks, err := h.taskService.ListUserTasks(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
			return
		}

		zap.L().Error("failed to list user tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListUserTasks)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Data:   mapper.ToTaskItems(tasks),
		Status: true,
	})
}
