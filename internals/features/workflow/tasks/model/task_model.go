// file: internals/features/workflow/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — kolom kanban & prioritas
// =========================================================

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Task struct {
	// PK
	TaskID uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`

	TaskTitle string  `gorm:"column:task_title;type:varchar(160);not null" json:"task_title"`
	TaskDesc  *string `gorm:"column:task_desc;type:text" json:"task_desc,omitempty"`

	// FK opsional
	TaskClientID   *uuid.UUID `gorm:"column:task_client_id;type:uuid;index" json:"task_client_id,omitempty"`
	TaskAssigneeID *uuid.UUID `gorm:"column:task_assignee_id;type:uuid;index" json:"task_assignee_id,omitempty"`

	TaskStatus   TaskStatus   `gorm:"column:task_status;type:varchar(20);not null;default:'todo';index:ix_task_status" json:"task_status"`
	TaskPriority TaskPriority `gorm:"column:task_priority;type:varchar(10);not null;default:'normal'" json:"task_priority"`

	TaskDueDate *time.Time     `gorm:"column:task_due_date;type:date" json:"task_due_date,omitempty"`
	TaskTags    pq.StringArray `gorm:"column:task_tags;type:text[]" json:"task_tags"`

	// urutan kartu di dalam kolom kanban
	TaskPosition int `gorm:"column:task_position;not null;default:0;index:ix_task_position" json:"task_position"`

	TaskCreatedAt time.Time      `gorm:"column:task_created_at;not null;default:now()" json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"column:task_updated_at;not null;default:now()" json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;index" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Task) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TaskCreatedAt.IsZero() {
		m.TaskCreatedAt = now
	}
	m.TaskUpdatedAt = now
	return nil
}

func (m *Task) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TaskUpdatedAt = time.Now()
	return nil
}
