package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/internal/utils"
	"github.com/MKhiriev/go-task-sync/internal/validators"
	"github.com/MKhiriev/go-task-sync/models"
)

type taskService struct {
	repo      store.TaskRepository
	validator validators.Validator
	hasher    *utils.ETagHasher
	ids       utils.IDGenerator

	logger *logger.Logger
}

// NewTaskService constructs a TaskService. Change-tokens are keyed with
// cfg.HashKey.
func NewTaskService(repo store.TaskRepository, cfg config.App, logger *logger.Logger) TaskService {
	return &taskService{
		repo:      repo,
		validator: validators.NewTaskValidator(),
		hasher:    utils.NewETagHasher(cfg.HashKey),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *taskService) ChangeToken(ctx context.Context, userID int64) (string, error) {
	revision, err := s.repo.Revision(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error reading revision: %w", err)
	}
	return s.hasher.ChangeToken(userID, revision), nil
}

func (s *taskService) GetLists(ctx context.Context, userID int64) (models.ListsResponse, error) {
	// The token is read first: a mutation racing with the list query leaves
	// the client with a stale token and newer lists, never the reverse.
	token, err := s.ChangeToken(ctx, userID)
	if err != nil {
		return models.ListsResponse{}, err
	}

	lists, err := s.repo.GetLists(ctx, userID)
	if err != nil {
		return models.ListsResponse{}, fmt.Errorf("error getting lists: %w", err)
	}

	return models.ListsResponse{ETag: token, Lists: lists}, nil
}

func (s *taskService) CreateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error) {
	if err := s.validator.Validate(ctx, list); err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	list.RemoteID = s.ids.Generate()
	saved, err := s.repo.CreateList(ctx, userID, list)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*taskService.CreateList").
			Int64("user_id", userID).
			Msg("list creation failed")
		return models.TaskList{}, fmt.Errorf("error creating list: %w", err)
	}

	return saved, nil
}

func (s *taskService) UpdateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error) {
	if list.RemoteID == "" {
		return models.TaskList{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, list); err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.repo.UpdateList(ctx, userID, list)
	if err != nil {
		if !errors.Is(err, store.ErrListNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "*taskService.UpdateList").
				Int64("user_id", userID).
				Str("list_id", list.RemoteID).
				Msg("list update failed")
		}
		return models.TaskList{}, fmt.Errorf("error updating list: %w", err)
	}

	return saved, nil
}

// GetTasks returns the tasks of a list owned by the user. Tasks of a
// deleted list are still readable so clients can pick up the tombstones.
func (s *taskService) GetTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error) {
	if query.ListID == "" {
		return nil, ErrInvalidDataProvided
	}

	if _, err := s.repo.GetList(ctx, query.UserID, query.ListID); err != nil {
		return nil, fmt.Errorf("error getting list: %w", err)
	}

	tasks, err := s.repo.GetTasks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error getting tasks: %w", err)
	}

	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, userID int64, listID string, task models.Task) (models.Task, error) {
	task.RemoteID = ""
	if err := s.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	task.RemoteID = s.ids.Generate()
	if task.Status == "" {
		task.Status = models.TaskStatusNeedsAction
	}
	saved, err := s.repo.CreateTask(ctx, userID, listID, task)
	if err != nil {
		if !errors.Is(err, store.ErrListNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "*taskService.CreateTask").
				Int64("user_id", userID).
				Str("list_id", listID).
				Msg("task creation failed")
		}
		return models.Task{}, fmt.Errorf("error creating task: %w", err)
	}

	return saved, nil
}

func (s *taskService) UpdateTask(ctx context.Context, userID int64, listID string, task models.Task, ifMatch string) (models.Task, error) {
	if task.RemoteID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var version *int64
	if ifMatch != "" {
		v, err := utils.ParseVersionETag(ifMatch)
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidIfMatch, ifMatch)
		}
		version = &v
	}

	if task.Status == "" {
		task.Status = models.TaskStatusNeedsAction
	}
	saved, err := s.repo.UpdateTask(ctx, userID, listID, task, version)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			logger.FromContext(ctx).Info().
				Str("func", "*taskService.UpdateTask").
				Str("task_id", task.RemoteID).
				Str("if_match", ifMatch).
				Msg("task version moved on")
		}
		return models.Task{}, fmt.Errorf("error updating task: %w", err)
	}

	return saved, nil
}
