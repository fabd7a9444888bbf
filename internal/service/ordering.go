package service

import (
	"cmp"
	"maps"
	"slices"

	"github.com/MKhiriev/go-task-sync/models"
)

type treePosition struct {
	depth int
	index int
}

// sortForUpload orders pending so that every parent and every previous
// sibling is uploaded before the tasks referring to it. Positions are
// computed over all tasks of the list. Ties break on local id.
func sortForUpload(pending, all []models.Task) []models.Task {
	positions := treePositions(all)

	sorted := slices.Clone(pending)
	slices.SortStableFunc(sorted, func(a, b models.Task) int {
		pa, pb := positions[a.ID], positions[b.ID]
		if c := cmp.Compare(pa.depth, pb.depth); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.index, pb.index); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// treePositions returns the depth in the parent chain and the index in the
// sibling chain of every task. A reference to a task outside the list
// counts as no reference. Cycles are cut where the walk first re-enters a
// task, visiting tasks in id order so the cut is deterministic.
func treePositions(all []models.Task) map[int64]treePosition {
	byID := make(map[int64]models.Task, len(all))
	for _, t := range all {
		if t.ID != 0 {
			byID[t.ID] = t
		}
	}

	depths := chainLengths(byID, func(t models.Task) *int64 { return t.LocalParent })
	indexes := chainLengths(byID, func(t models.Task) *int64 { return t.LocalPrevious })

	positions := make(map[int64]treePosition, len(byID))
	for id := range byID {
		positions[id] = treePosition{depth: depths[id], index: indexes[id]}
	}
	return positions
}

func chainLengths(byID map[int64]models.Task, next func(models.Task) *int64) map[int64]int {
	lengths := make(map[int64]int, len(byID))
	visiting := make(map[int64]bool)

	var walk func(id int64) int
	walk = func(id int64) int {
		if n, ok := lengths[id]; ok {
			return n
		}

		visiting[id] = true
		n := 0
		if ref := next(byID[id]); ref != nil {
			if _, known := byID[*ref]; known && !visiting[*ref] {
				n = walk(*ref) + 1
			}
		}
		delete(visiting, id)

		lengths[id] = n
		return n
	}

	for _, id := range slices.Sorted(maps.Keys(byID)) {
		walk(id)
	}
	return lengths
}
