package models

import "time"

// Credentials is the body of register and login requests.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ListsResponse carries the change-token together with every live list.
type ListsResponse struct {
	ETag  string     `json:"etag"`
	Lists []TaskList `json:"lists"`
}

// TasksResponse carries the tasks of one list.
type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// ETagResponse carries the current change-token.
type ETagResponse struct {
	ETag string `json:"etag"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// TaskQuery selects tasks of one remote list.
type TaskQuery struct {
	UserID int64
	ListID string
	// UpdatedMin keeps only tasks modified strictly after the given time.
	UpdatedMin *time.Time
	// ShowDeleted includes tombstones.
	ShowDeleted bool
}
