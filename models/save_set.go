// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ListTasks is one batch of tasks to persist under a list.
type ListTasks struct {
	List  *TaskList
	Tasks []Task
}

// SaveSet collects everything a sync run writes back to the local store.
//
// Lists are held by pointer so task batches stay attached to their list
// when a later result for the same list replaces its fields.
type SaveSet struct {
	Lists []*TaskList

	// Purge holds local tasks removed without ever reaching the remote side.
	Purge []Task
	// PurgeLists holds such lists. Their tasks go with them.
	PurgeLists []TaskList

	tasks map[*TaskList][]Task
}

// NewSaveSet returns an empty [SaveSet].
func NewSaveSet() *SaveSet {
	return &SaveSet{tasks: make(map[*TaskList][]Task)}
}

func (s *SaveSet) find(list TaskList) *TaskList {
	for _, l := range s.Lists {
		if l.SameAs(list) {
			return l
		}
	}
	return nil
}

// PutList stores list, overwriting the fields of an entry for the same list.
func (s *SaveSet) PutList(list TaskList) *TaskList {
	if existing := s.find(list); existing != nil {
		if list.ID == 0 {
			list.ID = existing.ID
		}
		*existing = list
		return existing
	}
	l := list
	s.Lists = append(s.Lists, &l)
	return &l
}

// Lookup returns the entry for list, or nil.
func (s *SaveSet) Lookup(list TaskList) *TaskList {
	return s.find(list)
}

// ListFor returns the entry for list, adding list unchanged if absent.
func (s *SaveSet) ListFor(list TaskList) *TaskList {
	if existing := s.find(list); existing != nil {
		return existing
	}
	return s.PutList(list)
}

// AddTasks appends tasks to the batch of list.
func (s *SaveSet) AddTasks(list *TaskList, tasks ...Task) {
	s.tasks[list] = append(s.tasks[list], tasks...)
}

// Tasks returns the batch of list.
func (s *SaveSet) Tasks(list *TaskList) []Task {
	return s.tasks[list]
}

// RemoteTasks returns the batch stored for the entry matching list.
func (s *SaveSet) RemoteTasks(list TaskList) []Task {
	existing := s.find(list)
	if existing == nil {
		return nil
	}
	return s.tasks[existing]
}

// Batches returns the task batches in list order.
func (s *SaveSet) Batches() []ListTasks {
	batches := make([]ListTasks, 0, len(s.Lists))
	for _, l := range s.Lists {
		batches = append(batches, ListTasks{List: l, Tasks: s.tasks[l]})
	}
	return batches
}

// TaskCount returns the number of tasks in all batches.
func (s *SaveSet) TaskCount() int {
	n := 0
	for _, tasks := range s.tasks {
		n += len(tasks)
	}
	return n
}

// LatestUpdate returns the newest task modification time, never older than floor.
func (s *SaveSet) LatestUpdate(floor time.Time) time.Time {
	latest := floor
	for _, tasks := range s.tasks {
		for _, t := range tasks {
			if t.Updated.After(latest) {
				latest = t.Updated
			}
		}
	}
	return latest
}
