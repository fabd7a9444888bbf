package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
)

// ── GET /api/etag ────────────────────────────────────────────────────────────

func TestGetETag(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().ChangeToken(gomock.Any(), testUserID).Return("abc", nil)

	rec := ts.do(http.MethodGet, "/api/etag", "", bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"etag":"abc"}`, rec.Body.String())
}

func TestGetETag_StoreFailure(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().ChangeToken(gomock.Any(), testUserID).Return("", store.ErrExecutingQuery)

	rec := ts.do(http.MethodGet, "/api/etag", "", bearer)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sql")
}

// ── GET /api/lists ───────────────────────────────────────────────────────────

func TestGetLists(t *testing.T) {
	updated := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	resp := models.ListsResponse{
		ETag: "tok",
		Lists: []models.TaskList{
			{RemoteID: "L1", Title: "home", ETag: "2", Updated: updated},
			{RemoteID: "L2", Title: "gone", Deleted: true, Updated: updated},
		},
	}

	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
	}{
		{name: "no validator", wantStatus: http.StatusOK},
		{name: "stale validator", ifNoneMatch: `"old"`, wantStatus: http.StatusOK},
		{name: "current bare", ifNoneMatch: "tok", wantStatus: http.StatusNotModified},
		{name: "current quoted", ifNoneMatch: `"tok"`, wantStatus: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			ts.expectAuthorized()
			ts.tasks.EXPECT().GetLists(gomock.Any(), testUserID).Return(resp, nil)

			headers := map[string]string{"Authorization": "Bearer good"}
			if tt.ifNoneMatch != "" {
				headers["If-None-Match"] = tt.ifNoneMatch
			}
			rec := ts.do(http.MethodGet, "/api/lists", "", headers)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, `"tok"`, rec.Header().Get("ETag"))

			if tt.wantStatus == http.StatusNotModified {
				assert.Empty(t, rec.Body.String())
				return
			}

			var got models.ListsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "tok", got.ETag)
			require.Len(t, got.Lists, 2)
			assert.True(t, got.Lists[1].Deleted, "tombstones are returned")
		})
	}
}

func TestGetLists_EmptyIsArray(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().GetLists(gomock.Any(), testUserID).Return(models.ListsResponse{ETag: "e"}, nil)

	rec := ts.do(http.MethodGet, "/api/lists", "", bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"etag":"e","lists":[]}`, rec.Body.String())
}

// ── POST/PUT /api/lists ──────────────────────────────────────────────────────

func TestCreateList(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().CreateList(gomock.Any(), testUserID, models.TaskList{Title: "work"}).
		Return(models.TaskList{RemoteID: "L9", Title: "work", ETag: "1"}, nil)

	rec := ts.do(http.MethodPost, "/api/lists", `{"title":"work"}`, bearer)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.TaskList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "L9", got.RemoteID)
}

func TestCreateList_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid json", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unexpected", body: `{"title":"x"}`, serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			ts.expectAuthorized()
			if tt.serviceErr != nil {
				ts.tasks.EXPECT().CreateList(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TaskList{}, tt.serviceErr)
			}

			rec := ts.do(http.MethodPost, "/api/lists", tt.body, bearer)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateList_PathIDWins(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().UpdateList(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, list models.TaskList) (models.TaskList, error) {
			assert.Equal(t, "L1", list.RemoteID)
			assert.True(t, list.Deleted)
			return list, nil
		})

	rec := ts.do(http.MethodPut, "/api/lists/L1", `{"id":"other","title":"x","deleted":true}`, bearer)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateList_NotFound(t *testing.T) {
	ts := newTestServices(t)
	ts.expectAuthorized()
	ts.tasks.EXPECT().UpdateList(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TaskList{}, store.ErrListNotFound)

	rec := ts.do(http.MethodPut, "/api/lists/L1", `{"title":"x"}`, bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
