package service

import "github.com/MKhiriev/go-task-sync/models"

// Resolution splits the local upload candidates of a run.
type Resolution struct {
	// Upload holds the tasks still eligible for upload, keyed by local list id.
	Upload map[int64][]models.Task
	// Purge holds tasks deleted before they ever reached the remote side.
	Purge []models.Task
	// Conflicts counts local changes dropped in favour of a remote one.
	Conflicts int
}

// ConflictResolver reconciles local upload candidates with the tasks about
// to be saved from the remote side. Tasks are remote-wins. A dirty list is
// always uploaded unless it was deleted before its first upload.
type ConflictResolver struct{}

// Resolve builds a new [Resolution] and leaves its arguments untouched.
// remote may be nil when nothing was downloaded.
func (ConflictResolver) Resolve(lists []models.TaskList, toUpload map[int64][]models.Task, remote *models.SaveSet) Resolution {
	res := Resolution{Upload: make(map[int64][]models.Task, len(toUpload))}

	for _, list := range lists {
		candidates := toUpload[list.ID]
		if len(candidates) == 0 {
			continue
		}

		var remoteWins []models.Task
		if remote != nil {
			remoteWins = remote.RemoteTasks(list)
		}

		kept := make([]models.Task, 0, len(candidates))
		for _, task := range candidates {
			switch {
			case containsTask(remoteWins, task):
				res.Conflicts++
			case task.DeletedBeforeUpload():
				res.Purge = append(res.Purge, task)
			default:
				kept = append(kept, task)
			}
		}
		if len(kept) > 0 {
			res.Upload[list.ID] = kept
		}
	}

	return res
}

// ResolveLists splits the dirty lists of a run into those to upload and
// those deleted before any upload, which are only purged locally.
func (ConflictResolver) ResolveLists(toUpload []models.TaskList) (upload, purge []models.TaskList) {
	for _, list := range toUpload {
		if list.DeletedBeforeUpload() {
			purge = append(purge, list)
			continue
		}
		upload = append(upload, list)
	}
	return upload, purge
}

func containsTask(tasks []models.Task, task models.Task) bool {
	for _, t := range tasks {
		if t.SameAs(task) {
			return true
		}
	}
	return false
}
