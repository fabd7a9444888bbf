// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/utils"
	"github.com/MKhiriev/go-task-sync/models"
)

func (h *Handler) getETag(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.getETag")
		return
	}

	token, err := h.services.TaskService.ChangeToken(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getETag")
		return
	}

	utils.WriteJSON(w, models.ETagResponse{ETag: token}, http.StatusOK)
}

// getLists answers 304 when If-None-Match still names the current change-token.
func (h *Handler) getLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.getLists")
		return
	}

	resp, err := h.services.TaskService.GetLists(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getLists")
		return
	}

	w.Header().Set("ETag", quoteETag(resp.ETag))
	if match := r.Header.Get("If-None-Match"); match != "" && unquoteETag(match) == resp.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if resp.Lists == nil {
		resp.Lists = []models.TaskList{}
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.createList")
		return
	}

	var list models.TaskList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createList").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.TaskService.CreateList(r.Context(), userID, list)
	if err != nil {
		writeError(w, r, err, "*Handler.createList")
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.updateList")
		return
	}

	var list models.TaskList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateList").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	list.RemoteID = chi.URLParam(r, "listID")

	saved, err := h.services.TaskService.UpdateList(r.Context(), userID, list)
	if err != nil {
		writeError(w, r, err, "*Handler.updateList")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func quoteETag(tag string) string {
	return `"` + tag + `"`
}

// unquoteETag accepts both bare and quoted entity tags.
func unquoteETag(tag string) string {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
	return strings.Trim(tag, `"`)
}
