// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/workers"
	"github.com/MKhiriev/go-task-sync/models"
)

type command struct {
	// args is the positional part of the usage line.
	args  string
	short string
	// local commands edit the local store only.
	local bool
	// remote commands reach the task service.
	remote bool
	run    func(a *App, ctx context.Context) error
}

var commands = map[string]command{
	"register": {short: "Create the account on the task service", remote: true, run: (*App).register},
	"sync":     {short: "Run one full sync", remote: true, run: (*App).fullSync},
	"push":     {short: "Upload local changes without fetching", remote: true, run: (*App).push},
	"daemon":   {short: "Sync periodically until interrupted", remote: true, run: (*App).daemon},
	"lists":    {short: "Show local lists", local: true, run: (*App).lists},
	"add-list": {args: "TITLE", short: "Create a list", local: true, run: (*App).addList},
	"tasks":    {args: "LIST_ID", short: "Show the tasks of a list", local: true, run: (*App).listTasks},
	"add-task": {
		args:  "LIST_ID TITLE [-parent ID] [-previous ID] [-notes TEXT] [-due WHEN]",
		short: "Create a task",
		local: true,
		run:   (*App).addTask,
	},
	"done":    {args: "TASK_ID", short: "Mark a task completed", local: true, run: (*App).done},
	"rm":      {args: "TASK_ID", short: "Delete a task", local: true, run: (*App).remove},
	"version": {short: "Print build information", run: (*App).version},
}

func (a *App) version(context.Context) error {
	fmt.Fprintf(a.out, "taskctl %s (built %s, commit %s)\n",
		a.build.BuildVersion(), a.build.BuildDate(), a.build.BuildCommit())
	return nil
}

// ── remote ──

func (a *App) register(ctx context.Context) error {
	if err := a.auth.Register(ctx, a.account()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "account %q registered\n", a.cfg.Sync.Login)
	return nil
}

func (a *App) fullSync(ctx context.Context) error {
	return a.reportSync("sync", a.sync.FullSync(ctx, a.account()))
}

func (a *App) push(ctx context.Context) error {
	return a.reportSync("push", a.sync.UploadOnlySync(ctx, a.account()))
}

func (a *App) daemon(ctx context.Context) error {
	worker := a.newSyncWorker()
	workers.NewWorkers(worker).Run(ctx)

	stats, runs, last := worker.Stats()
	fmt.Fprintf(a.out, "daemon stopped after %d runs, %s per run on average\n",
		runs, worker.AvgRunDuration().Round(time.Millisecond))
	renderStats(a.out, stats)

	if runs > 0 && last.Status == models.SyncLoginFailure {
		return fmt.Errorf("%w: %w", ErrLoginFailed, last.Err)
	}
	return nil
}

func (a *App) reportSync(name string, res models.SyncResult) error {
	fmt.Fprintf(a.out, "%s: %s\n", name, res.Status)
	renderStats(a.out, res.Stats)

	switch res.Status {
	case models.SyncLoginFailure:
		return fmt.Errorf("%w: %w", ErrLoginFailed, res.Err)
	case models.SyncError:
		return fmt.Errorf("%w: %w", ErrSyncFailed, res.Err)
	}
	return nil
}

// ── local ──

func (a *App) lists(ctx context.Context) error {
	if len(a.args) != 0 {
		return fmt.Errorf("%w: lists takes no arguments", ErrUsage)
	}

	lists, err := a.tasks.GetLists(ctx, a.cfg.Sync.Account)
	if err != nil {
		return fmt.Errorf("get lists: %w", err)
	}

	renderLists(a.out, lists)
	return nil
}

func (a *App) addList(ctx context.Context) error {
	if len(a.args) != 1 || strings.TrimSpace(a.args[0]) == "" {
		return fmt.Errorf("%w: add-list TITLE", ErrUsage)
	}

	list, err := a.tasks.CreateList(ctx, a.cfg.Sync.Account, a.args[0])
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}

	fmt.Fprintf(a.out, "list %d created\n", list.ID)
	return nil
}

func (a *App) listTasks(ctx context.Context) error {
	if len(a.args) != 1 {
		return fmt.Errorf("%w: tasks LIST_ID", ErrUsage)
	}
	listID, err := parseID(a.args[0])
	if err != nil {
		return err
	}

	tasks, err := a.tasks.ListTasks(ctx, a.cfg.Sync.Account, listID)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	renderTasks(a.out, tasks)
	return nil
}

func (a *App) addTask(ctx context.Context) error {
	if len(a.args) < 2 {
		return fmt.Errorf("%w: add-task LIST_ID TITLE [-parent ID] [-previous ID]", ErrUsage)
	}
	listID, err := parseID(a.args[0])
	if err != nil {
		return err
	}

	task := models.Task{ListID: listID, Title: a.args[1]}
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrUsage)
	}

	fs := flag.NewFlagSet("add-task", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	parent := fs.Int64("parent", 0, "local id of the parent task")
	previous := fs.Int64("previous", 0, "local id of the previous sibling")
	fs.StringVar(&task.Notes, "notes", "", "task notes")
	due := fs.String("due", "", "due time: RFC 3339, a date or a phrase like \"next friday\"")

	if err = fs.Parse(a.args[2:]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: unexpected %q", ErrUsage, fs.Arg(0))
	}

	if *parent > 0 {
		task.LocalParent = parent
	}
	if *previous > 0 {
		task.LocalPrevious = previous
	}
	if *due != "" {
		t, err := parseDue(*due, a.now())
		if err != nil {
			return err
		}
		task.Due = &t
	}

	created, err := a.tasks.CreateTask(ctx, a.cfg.Sync.Account, task)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	fmt.Fprintf(a.out, "task %d created\n", created.ID)
	return nil
}

func (a *App) done(ctx context.Context) error {
	taskID, err := a.singleID("done TASK_ID")
	if err != nil {
		return err
	}

	task, err := a.tasks.GetTask(ctx, a.cfg.Sync.Account, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task.Status == models.TaskStatusCompleted {
		fmt.Fprintf(a.out, "task %d already completed\n", taskID)
		return nil
	}

	task.Status = models.TaskStatusCompleted
	if err = a.tasks.UpdateTask(ctx, a.cfg.Sync.Account, task); err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	fmt.Fprintf(a.out, "task %d completed\n", taskID)
	return nil
}

func (a *App) remove(ctx context.Context) error {
	taskID, err := a.singleID("rm TASK_ID")
	if err != nil {
		return err
	}

	if err = a.tasks.MarkTaskDeleted(ctx, a.cfg.Sync.Account, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	fmt.Fprintf(a.out, "task %d deleted\n", taskID)
	return nil
}

func (a *App) singleID(form string) (int64, error) {
	if len(a.args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUsage, form)
	}
	return parseID(a.args[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", ErrUsage, s)
	}
	return id, nil
}

// IsUsage reports whether err is a command-line misuse.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand)
}
