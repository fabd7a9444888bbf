package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/utils"
	"github.com/MKhiriev/go-task-sync/models"
)

func (h *Handler) getTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.getTasks")
		return
	}

	query, err := taskQueryFromRequest(r, userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getTasks")
		return
	}

	tasks, err := h.services.TaskService.GetTasks(r.Context(), query)
	if err != nil {
		writeError(w, r, err, "*Handler.getTasks")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, models.TasksResponse{Tasks: tasks}, http.StatusOK)
}

// taskQueryFromRequest reads the list id and the updated_min and show_deleted
// query parameters. updated_min accepts fractional seconds.
func taskQueryFromRequest(r *http.Request, userID int64) (models.TaskQuery, error) {
	query := models.TaskQuery{
		UserID: userID,
		ListID: chi.URLParam(r, "listID"),
	}

	values := r.URL.Query()
	if raw := values.Get("updated_min"); raw != "" {
		since, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return models.TaskQuery{}, fmt.Errorf("%w: %q", ErrInvalidUpdatedMin, raw)
		}
		since = since.UTC()
		query.UpdatedMin = &since
	}
	if raw := values.Get("show_deleted"); raw != "" {
		showDeleted, err := strconv.ParseBool(raw)
		if err != nil {
			return models.TaskQuery{}, fmt.Errorf("%w: %q", ErrInvalidShowDeleted, raw)
		}
		query.ShowDeleted = showDeleted
	}

	return query, nil
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.createTask")
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.TaskService.CreateTask(r.Context(), userID, chi.URLParam(r, "listID"), task)
	if err != nil {
		writeError(w, r, err, "*Handler.createTask")
		return
	}

	w.Header().Set("ETag", quoteETag(saved.ETag))
	utils.WriteJSON(w, saved, http.StatusCreated)
}

// updateTask replaces a task. A stale If-Match is answered with 412.
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.updateTask")
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	task.RemoteID = chi.URLParam(r, "taskID")

	saved, err := h.services.TaskService.UpdateTask(r.Context(), userID, chi.URLParam(r, "listID"), task, r.Header.Get("If-Match"))
	if err != nil {
		writeError(w, r, err, "*Handler.updateTask")
		return
	}

	w.Header().Set("ETag", quoteETag(saved.ETag))
	utils.WriteJSON(w, saved, http.StatusOK)
}
