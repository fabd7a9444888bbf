package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-sync/models"
)

// fakeLocalStore keeps one account in memory. Commit applies the save set
// roughly the way the SQLite store does so runs can be chained.
type fakeLocalStore struct {
	lists []models.TaskList
	tasks []models.Task
	state models.SyncState

	nextID  int64
	commits int

	lastSet   *models.SaveSet
	lastState *models.SyncState
}

func (f *fakeLocalStore) GetAllLists(ctx context.Context, account string) ([]models.TaskList, []models.TaskList, error) {
	all, toUpload := models.PartitionLists(f.lists)
	return all, toUpload, nil
}

func (f *fakeLocalStore) GetAllTasks(ctx context.Context, account string) (map[int64][]models.Task, map[int64][]models.Task, *models.IDMap, error) {
	byList, toUpload, ids := models.GroupTasks(f.tasks)
	return byList, toUpload, ids, nil
}

func (f *fakeLocalStore) GetSyncState(ctx context.Context, account string) (models.SyncState, error) {
	return f.state, nil
}

func (f *fakeLocalStore) Commit(ctx context.Context, account string, set *models.SaveSet, ids *models.IDMap, state *models.SyncState) error {
	f.commits++
	f.lastSet = set

	for _, batch := range set.Batches() {
		f.applyList(batch.List)
		for _, task := range batch.Tasks {
			task.ListID = batch.List.ID
			f.applyTask(task)
		}
	}
	for _, purged := range set.Purge {
		f.removeTask(purged.ID)
	}

	if state != nil {
		s := *state
		f.lastState = &s
		f.state = s
	}
	return nil
}

func (f *fakeLocalStore) newID() int64 {
	if f.nextID == 0 {
		f.nextID = 1000
	}
	f.nextID++
	return f.nextID
}

func (f *fakeLocalStore) applyList(list *models.TaskList) {
	for i := range f.lists {
		if f.lists[i].SameAs(*list) {
			list.ID = f.lists[i].ID
			f.lists[i] = *list
			return
		}
	}
	if list.Deleted {
		return
	}
	list.ID = f.newID()
	f.lists = append(f.lists, *list)
}

func (f *fakeLocalStore) applyTask(task models.Task) {
	for i := range f.tasks {
		if f.tasks[i].SameAs(task) {
			if task.Deleted {
				f.removeTask(f.tasks[i].ID)
				return
			}
			task.ID = f.tasks[i].ID
			f.tasks[i] = task
			return
		}
	}
	if task.Deleted {
		return
	}
	task.ID = f.newID()
	f.tasks = append(f.tasks, task)
}

func (f *fakeLocalStore) removeTask(id int64) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return
		}
	}
}

func (f *fakeLocalStore) task(id int64) models.Task {
	for _, t := range f.tasks {
		if t.ID == id {
			return t
		}
	}
	return models.Task{}
}

// fakeRemote is an in-memory task service. Every accepted upload moves the
// change-token.
type fakeRemote struct {
	revision int
	lists    []models.TaskList
	tasks    map[string][]models.Task

	authErr    error
	fetchErr   error
	refreshErr error

	// conflicts makes uploads of these local task ids return nil
	conflicts map[int64]bool

	nextID        int
	fetchCalls    int
	refreshCalls  int
	closed        int
	uploadedLists []models.TaskList
	uploadedTasks []models.Task
	strictFlags   []bool

	clock time.Time
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		tasks:     make(map[string][]models.Task),
		conflicts: make(map[int64]bool),
		clock:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRemote) token() string {
	return fmt.Sprintf("tok-%d", f.revision)
}

func (f *fakeRemote) bump() time.Time {
	f.revision++
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRemote) Authenticate(ctx context.Context, account models.Account, scope string) error {
	return f.authErr
}

func (f *fakeRemote) FetchChangeTokenAndLists(ctx context.Context, localToken string, localLists []models.TaskList) (string, []models.TaskList, error) {
	if f.fetchErr != nil {
		return "", nil, f.fetchErr
	}
	if f.token() == localToken {
		return localToken, nil, nil
	}

	lists := make([]models.TaskList, 0, len(f.lists))
	for _, remote := range f.lists {
		for _, local := range localLists {
			if local.RemoteID == remote.RemoteID {
				remote.ID = local.ID
			}
		}
		lists = append(lists, remote)
	}
	return f.token(), lists, nil
}

func (f *fakeRemote) FetchModifiedTasks(ctx context.Context, list models.TaskList, localTasks []models.Task, since time.Time, ids *models.IDMap) ([]models.Task, error) {
	f.fetchCalls++

	var out []models.Task
	for _, task := range f.tasks[list.RemoteID] {
		if !task.Updated.After(since) {
			continue
		}
		task.ListID = list.ID
		task.ID, _ = ids.GetKey(task.RemoteID)
		task.LocalParent = models.LocalRef(ids, task.RemoteParent)
		task.LocalPrevious = models.LocalRef(ids, task.RemotePrevious)
		out = append(out, task)
	}
	return out, nil
}

func (f *fakeRemote) UploadList(ctx context.Context, list models.TaskList) (*models.TaskList, error) {
	f.uploadedLists = append(f.uploadedLists, list)

	if list.RemoteID == "" {
		f.nextID++
		list.RemoteID = fmt.Sprintf("rl-%d", f.nextID)
	}
	list.Updated = f.bump()
	list.Modified = false

	replaced := false
	for i := range f.lists {
		if f.lists[i].RemoteID == list.RemoteID {
			f.lists[i] = list
			replaced = true
		}
	}
	if !replaced {
		f.lists = append(f.lists, list)
	}
	return &list, nil
}

func (f *fakeRemote) UploadTask(ctx context.Context, task models.Task, list models.TaskList, strict bool) (*models.Task, error) {
	f.uploadedTasks = append(f.uploadedTasks, task)
	f.strictFlags = append(f.strictFlags, strict)

	if f.conflicts[task.ID] {
		return nil, nil
	}

	if task.RemoteID == "" {
		f.nextID++
		task.RemoteID = fmt.Sprintf("rt-%d", f.nextID)
	}
	task.Updated = f.bump()
	task.Modified = false
	task.ETag = fmt.Sprintf("%d", f.revision)

	stored := task
	stored.ID, stored.ListID = 0, 0
	f.tasks[list.RemoteID] = append(f.tasks[list.RemoteID], stored)

	return &task, nil
}

func (f *fakeRemote) FetchChangeToken(ctx context.Context) (string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.token(), nil
}

func (f *fakeRemote) Close() {
	f.closed++
}

func (f *fakeRemote) uploadedByID(id int64) (models.Task, bool) {
	for _, t := range f.uploadedTasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
