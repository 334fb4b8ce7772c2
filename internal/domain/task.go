package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TaskStatus enumerates task progress.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

var taskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	return contains(taskStatuses, s)
}

// ParseTaskStatus converts raw input into a TaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	return parseEnum("status", raw, taskStatuses)
}

// UnmarshalText rejects unknown statuses during decoding.
func (s *TaskStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TaskPriority enumerates task urgency.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

var taskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	return contains(taskPriorities, p)
}

// ParseTaskPriority converts raw input into a TaskPriority.
func ParseTaskPriority(raw string) (TaskPriority, error) {
	return parseEnum("priority", raw, taskPriorities)
}

// UnmarshalText rejects unknown priorities during decoding.
func (p *TaskPriority) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskPriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Task is a unit of follow-up work. The optional references point at a
// User, Customer and Deal; none of them are checked.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  *string      `json:"assigneeId,omitempty"`
	CustomerID  *string      `json:"customerId,omitempty"`
	DealID      *string      `json:"dealId,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Timestamps
}

// TaskInput describes the values needed to create a Task.
type TaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	AssigneeID  *string
	CustomerID  *string
	DealID      *string
	DueDate     *time.Time
}

// NewTask builds a Task with a fresh id and timestamps.
func NewTask(input TaskInput) (*Task, error) {
	task := &Task{
		ID:          newID(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssigneeID:  input.AssigneeID,
		CustomerID:  input.CustomerID,
		DealID:      input.DealID,
		DueDate:     input.DueDate,
		Timestamps:  newTimestamps(),
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks the declared invariants of t.
func (t *Task) Validate() error {
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Value: string(t.Status), Allowed: enumStrings(taskStatuses)}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Value: string(t.Priority), Allowed: enumStrings(taskPriorities)}
	}
	return t.Timestamps.Validate()
}

// UnmarshalJSON decodes t and rejects a missing or null status or priority.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Task(decoded)
	return t.Validate()
}
