package client

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-task-sync/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderLists(w io.Writer, lists []models.TaskList) {
	if len(lists) == 0 {
		fmt.Fprintln(w, faintStyle.Render("no lists"))
		return
	}

	t := newTable("ID", "TITLE", "STATE")
	for _, l := range lists {
		t.Row(strconv.FormatInt(l.ID, 10), l.Title, syncState(l.IsUploaded(), l.Modified))
	}
	fmt.Fprintln(w, t.Render())
}

func renderTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, faintStyle.Render("no tasks"))
		return
	}

	t := newTable("ID", "DONE", "TITLE", "PARENT", "PREVIOUS", "DUE", "STATE")
	for _, task := range tasks {
		done := " "
		if task.Status == models.TaskStatusCompleted {
			done = "x"
		}
		due := ""
		if task.Due != nil {
			due = task.Due.Format("2006-01-02")
		}
		t.Row(
			strconv.FormatInt(task.ID, 10),
			done,
			task.Title,
			optionalID(task.LocalParent),
			optionalID(task.LocalPrevious),
			due,
			syncState(task.IsUploaded(), task.Modified),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderStats(w io.Writer, s models.SyncStats) {
	fmt.Fprintf(w, "  lists uploaded:   %d\n", s.ListsUploaded)
	fmt.Fprintf(w, "  tasks uploaded:   %d\n", s.TasksUploaded)
	fmt.Fprintf(w, "  tasks downloaded: %d\n", s.TasksDownloaded)
	fmt.Fprintf(w, "  conflicts:        %d\n", s.Conflicts)
	fmt.Fprintf(w, "  purged:           %d\n", s.Purged)
	if s.IOErrors > 0 || s.AuthErrors > 0 {
		fmt.Fprintf(w, "  errors:           io %d, auth %d\n", s.IOErrors, s.AuthErrors)
	}
}

func syncState(uploaded, modified bool) string {
	switch {
	case !uploaded:
		return "new"
	case modified:
		return "modified"
	default:
		return "synced"
	}
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
