// file: internals/features/workflow/tasks/dto/task_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	helpers "agencehub_backend/internals/helpers"

	taskModel "agencehub_backend/internals/features/workflow/tasks/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateTaskRequest struct {
	TaskTitle      string     `json:"task_title" validate:"required,min=1,max=160"`
	TaskDesc       *string    `json:"task_desc" validate:"omitempty"`
	TaskClientID   *uuid.UUID `json:"task_client_id" validate:"omitempty"`
	TaskAssigneeID *uuid.UUID `json:"task_assignee_id" validate:"omitempty"`
	TaskStatus     *string    `json:"task_status" validate:"omitempty,oneof=todo in_progress review done"`
	TaskPriority   *string    `json:"task_priority" validate:"omitempty,oneof=low normal high urgent"`
	TaskDueDate    *string    `json:"task_due_date" validate:"omitempty,datetime=2006-01-02"`
	TaskTags       []string   `json:"task_tags" validate:"omitempty,dive,min=1,max=40"`
	TaskPosition   *int       `json:"task_position" validate:"omitempty,gte=0"`
}

func (r CreateTaskRequest) ToModel() (*taskModel.Task, error) {
	m := &taskModel.Task{
		TaskTitle:      r.TaskTitle,
		TaskDesc:       r.TaskDesc,
		TaskClientID:   r.TaskClientID,
		TaskAssigneeID: r.TaskAssigneeID,
		TaskStatus:     taskModel.TaskStatusTodo,
		TaskPriority:   taskModel.TaskPriorityNormal,
		TaskTags:       pq.StringArray(r.TaskTags),
	}
	if r.TaskStatus != nil {
		m.TaskStatus = taskModel.TaskStatus(*r.TaskStatus)
	}
	if r.TaskPriority != nil {
		m.TaskPriority = taskModel.TaskPriority(*r.TaskPriority)
	}
	if r.TaskDueDate != nil && *r.TaskDueDate != "" {
		d, err := helpers.ParseDateYMD(*r.TaskDueDate)
		if err != nil {
			return nil, err
		}
		m.TaskDueDate = &d
	}
	if r.TaskPosition != nil {
		m.TaskPosition = *r.TaskPosition
	}
	return m, nil
}

type PatchTaskRequest struct {
	TaskTitle      *string    `json:"task_title" validate:"omitempty,min=1,max=160"`
	TaskDesc       *string    `json:"task_desc" validate:"omitempty"`
	TaskClientID   *uuid.UUID `json:"task_client_id" validate:"omitempty"`
	TaskAssigneeID *uuid.UUID `json:"task_assignee_id" validate:"omitempty"`
	TaskPriority   *string    `json:"task_priority" validate:"omitempty,oneof=low normal high urgent"`
	TaskDueDate    *string    `json:"task_due_date" validate:"omitempty,datetime=2006-01-02"`
	TaskTags       []string   `json:"task_tags" validate:"omitempty,dive,min=1,max=40"`
}

func (r PatchTaskRequest) ApplyTo(m *taskModel.Task) error {
	if r.TaskTitle != nil {
		m.TaskTitle = *r.TaskTitle
	}
	if r.TaskDesc != nil {
		m.TaskDesc = r.TaskDesc
	}
	if r.TaskClientID != nil {
		m.TaskClientID = r.TaskClientID
	}
	if r.TaskAssigneeID != nil {
		m.TaskAssigneeID = r.TaskAssigneeID
	}
	if r.TaskPriority != nil {
		m.TaskPriority = taskModel.TaskPriority(*r.TaskPriority)
	}
	if r.TaskDueDate != nil {
		if *r.TaskDueDate == "" {
			m.TaskDueDate = nil
		} else {
			d, err := helpers.ParseDateYMD(*r.TaskDueDate)
			if err != nil {
				return err
			}
			m.TaskDueDate = &d
		}
	}
	if r.TaskTags != nil {
		m.TaskTags = pq.StringArray(r.TaskTags)
	}
	return nil
}

// MoveTaskRequest menggeser kartu antar kolom kanban.
type MoveTaskRequest struct {
	TaskStatus   string `json:"task_status" validate:"required,oneof=todo in_progress review done"`
	TaskPosition *int   `json:"task_position" validate:"omitempty,gte=0"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type TaskResponse struct {
	TaskID         uuid.UUID  `json:"task_id"`
	TaskTitle      string     `json:"task_title"`
	TaskDesc       *string    `json:"task_desc,omitempty"`
	TaskClientID   *uuid.UUID `json:"task_client_id,omitempty"`
	TaskAssigneeID *uuid.UUID `json:"task_assignee_id,omitempty"`
	TaskStatus     string     `json:"task_status"`
	TaskPriority   string     `json:"task_priority"`
	TaskDueDate    *string    `json:"task_due_date,omitempty"`
	TaskTags       []string   `json:"task_tags"`
	TaskPosition   int        `json:"task_position"`
	TaskCreatedAt  time.Time  `json:"task_created_at"`
	TaskUpdatedAt  time.Time  `json:"task_updated_at"`
}

func FromModelTask(m *taskModel.Task) TaskResponse {
	tags := []string(m.TaskTags)
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		TaskID:         m.TaskID,
		TaskTitle:      m.TaskTitle,
		TaskDesc:       m.TaskDesc,
		TaskClientID:   m.TaskClientID,
		TaskAssigneeID: m.TaskAssigneeID,
		TaskStatus:     string(m.TaskStatus),
		TaskPriority:   string(m.TaskPriority),
		TaskDueDate:    helpers.FormatDateYMDPtr(m.TaskDueDate),
		TaskTags:       tags,
		TaskPosition:   m.TaskPosition,
		TaskCreatedAt:  m.TaskCreatedAt,
		TaskUpdatedAt:  m.TaskUpdatedAt,
	}
}

func FromModelTasks(rows []taskModel.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelTask(&rows[i]))
	}
	return out
}
