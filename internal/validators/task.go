package validators

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

// Field name constants accepted by [TaskValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldTitle    = "title"
	FieldNotes    = "notes"
	FieldStatus   = "status"
	FieldParent   = "parent"
	FieldPrevious = "previous"
)

const (
	maxTitleLength = 1024
	maxNotesLength = 8192
)

// TaskValidator checks lists and tasks sent to the task service.
// Tombstones only need an identity, so their title may be empty.
type TaskValidator struct{}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskList:
		return v.validateList(ctx, value, fields...)
	case *models.TaskList:
		return v.validateList(ctx, *value, fields...)

	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateList(ctx context.Context, list models.TaskList, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := checkTitle(list.Title, list.Deleted); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateTask(ctx context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldNotes, FieldStatus, FieldParent, FieldPrevious}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := checkTitle(task.Title, task.Deleted); err != nil {
				return err
			}
		case FieldNotes:
			if len(task.Notes) > maxNotesLength {
				return ErrNotesTooLong
			}
		case FieldStatus:
			switch task.Status {
			case "", models.TaskStatusNeedsAction, models.TaskStatusCompleted:
			default:
				return ErrInvalidStatus
			}
		case FieldParent:
			if task.RemoteParent != "" && task.RemoteParent == task.RemoteID {
				return ErrSelfParent
			}
		case FieldPrevious:
			if task.RemotePrevious != "" && task.RemotePrevious == task.RemoteID {
				return ErrSelfPrevious
			}
			if task.RemotePrevious != "" && task.RemotePrevious == task.RemoteParent {
				return ErrParentIsPrevious
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkTitle(title string, deleted bool) error {
	if title == "" && !deleted {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
