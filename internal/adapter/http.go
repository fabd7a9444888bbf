package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/utils"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/go-resty/resty/v2"
)

// HTTPRemoteClient implements [RemoteClient] and [AccountClient] over the
// task service REST API.
type HTTPRemoteClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRemoteClient returns a client for the service at adapterCfg.HTTPAddress.
func NewHTTPRemoteClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPRemoteClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &HTTPRemoteClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *HTTPRemoteClient) Register(ctx context.Context, account models.Account) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Login: account.Login, Password: account.Password}).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("%w: register request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.storeToken(resp)
}

func (h *HTTPRemoteClient) Authenticate(ctx context.Context, account models.Account, scope string) error {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("scope", scope).
		SetBody(models.Credentials{Login: account.Login, Password: account.Password}).
		Post("/api/auth/login")
	if err != nil {
		log.Err(err).Str("func", "*HTTPRemoteClient.Authenticate").Msg("login request failed")
		return fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.storeToken(resp)
}

func (h *HTTPRemoteClient) storeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	h.token = token
	return nil
}

func (h *HTTPRemoteClient) FetchChangeTokenAndLists(ctx context.Context, localToken string, localLists []models.TaskList) (string, []models.TaskList, error) {
	req := h.authedRequest(ctx)
	if localToken != "" {
		req.SetHeader("If-None-Match", localToken)
	}

	resp, err := req.Get("/api/lists")
	if err != nil {
		return "", nil, fmt.Errorf("%w: fetch lists: %w", ErrTransport, err)
	}
	if resp.StatusCode() == http.StatusNotModified {
		return localToken, nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return "", nil, err
	}

	var lr models.ListsResponse
	if err = decode(resp, &lr); err != nil {
		return "", nil, err
	}
	if lr.ETag == "" {
		return "", nil, fmt.Errorf("%w: empty change-token", ErrMalformedResponse)
	}

	for i := range lr.Lists {
		remote := &lr.Lists[i]
		for _, local := range localLists {
			if local.RemoteID != "" && local.RemoteID == remote.RemoteID {
				remote.ID = local.ID
				remote.Account = local.Account
				break
			}
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*HTTPRemoteClient.FetchChangeTokenAndLists").
		Int("lists", len(lr.Lists)).
		Bool("token_changed", lr.ETag != localToken).
		Msg("fetched remote lists")

	return lr.ETag, lr.Lists, nil
}

func (h *HTTPRemoteClient) FetchModifiedTasks(ctx context.Context, list models.TaskList, localTasks []models.Task, since time.Time, ids *models.IDMap) ([]models.Task, error) {
	if !list.IsUploaded() {
		return nil, nil
	}

	req := h.authedRequest(ctx).
		SetPathParam("listID", list.RemoteID).
		SetQueryParam("show_deleted", "true")
	if !since.IsZero() {
		req.SetQueryParam("updated_min", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/api/lists/{listID}/tasks")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch tasks: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tr models.TasksResponse
	if err = decode(resp, &tr); err != nil {
		return nil, err
	}

	byRemoteID := make(map[string]int64, len(localTasks))
	for _, t := range localTasks {
		if t.IsUploaded() {
			byRemoteID[t.RemoteID] = t.ID
		}
	}

	for i := range tr.Tasks {
		task := &tr.Tasks[i]
		task.ListID = list.ID
		task.Modified = false
		if id, ok := byRemoteID[task.RemoteID]; ok {
			task.ID = id
		} else if ids != nil {
			task.ID, _ = ids.GetKey(task.RemoteID)
		}
		if ids != nil {
			task.LocalParent = models.LocalRef(ids, task.RemoteParent)
			task.LocalPrevious = models.LocalRef(ids, task.RemotePrevious)
		}
	}

	return tr.Tasks, nil
}

func (h *HTTPRemoteClient) UploadList(ctx context.Context, list models.TaskList) (*models.TaskList, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(list)

	var (
		resp *resty.Response
		err  error
	)
	if list.IsUploaded() {
		resp, err = req.SetPathParam("listID", list.RemoteID).Put("/api/lists/{listID}")
	} else {
		resp, err = req.Post("/api/lists")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: upload list: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if isUploadConflict(err) {
			logger.FromContext(ctx).Info().
				Str("func", "*HTTPRemoteClient.UploadList").
				Int64("list_id", list.ID).
				Int("status", resp.StatusCode()).
				Msg("list upload rejected as conflict")
			return nil, nil
		}
		return nil, err
	}

	var saved models.TaskList
	if err = decode(resp, &saved); err != nil {
		return nil, err
	}
	if saved.RemoteID == "" {
		return nil, fmt.Errorf("%w: list without id", ErrMalformedResponse)
	}

	saved.ID = list.ID
	saved.Account = list.Account
	saved.Modified = false

	return &saved, nil
}

func (h *HTTPRemoteClient) UploadTask(ctx context.Context, task models.Task, list models.TaskList, strict bool) (*models.Task, error) {
	if !list.IsUploaded() {
		return nil, fmt.Errorf("upload task %d: list %d has no remote id", task.ID, list.ID)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("listID", list.RemoteID).
		SetBody(task)

	var (
		resp *resty.Response
		err  error
	)
	if task.IsUploaded() {
		if strict && task.ETag != "" {
			req.SetHeader("If-Match", task.ETag)
		}
		resp, err = req.SetPathParam("taskID", task.RemoteID).Put("/api/lists/{listID}/tasks/{taskID}")
	} else {
		resp, err = req.Post("/api/lists/{listID}/tasks")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: upload task: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if isUploadConflict(err) {
			logger.FromContext(ctx).Info().
				Str("func", "*HTTPRemoteClient.UploadTask").
				Int64("task_id", task.ID).
				Int("status", resp.StatusCode()).
				Msg("task upload rejected as conflict")
			return nil, nil
		}
		return nil, err
	}

	var saved models.Task
	if err = decode(resp, &saved); err != nil {
		return nil, err
	}
	if saved.RemoteID == "" {
		return nil, fmt.Errorf("%w: task without id", ErrMalformedResponse)
	}

	saved.ID = task.ID
	saved.ListID = task.ListID
	saved.LocalParent = task.LocalParent
	saved.LocalPrevious = task.LocalPrevious
	saved.Modified = false

	return &saved, nil
}

func (h *HTTPRemoteClient) FetchChangeToken(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/etag")
	if err != nil {
		return "", fmt.Errorf("%w: fetch change-token: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var er models.ETagResponse
	if err = decode(resp, &er); err != nil {
		return "", err
	}
	if er.ETag == "" {
		return "", fmt.Errorf("%w: empty change-token", ErrMalformedResponse)
	}

	return er.ETag, nil
}

func (h *HTTPRemoteClient) Close() {
	h.token = ""
	h.client.GetClient().CloseIdleConnections()
}

func (h *HTTPRemoteClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
