// Package cli implements the non-interactive subcommands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/elenalowe/tasktide/internal/config"
	"github.com/elenalowe/tasktide/internal/domain"
	"github.com/elenalowe/tasktide/internal/storage"
	"github.com/elenalowe/tasktide/internal/store"
)

// Dependencies holds the services needed for CLI commands
type Dependencies struct {
	Config   *config.Config
	Store    *store.Store
	Sessions *store.SessionLog
	Persist  *storage.Persister
	Logger   *slog.Logger
}

// NewDependencies creates a Dependencies instance with restored state
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}

	kv, err := storage.NewFileKV(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	taskStore := store.New(logger)
	sessions := store.NewSessionLog()
	persist := storage.NewPersister(kv, logger)

	snap := persist.Load()
	if len(snap.Tasks) > 0 || len(snap.Categories) > 0 {
		taskStore.ReplaceAll(snap.Tasks, snap.Categories)
		sessions.Replace(snap.Sessions)
	}

	return &Dependencies{
		Config:   cfg,
		Store:    taskStore,
		Sessions: sessions,
		Persist:  persist,
		Logger:   logger,
	}, nil
}

// save writes the current state back through the persister
func (deps *Dependencies) save() {
	deps.Persist.Save(storage.Snapshot{
		Tasks:      deps.Store.Tasks(),
		Categories: deps.Store.Categories(),
		Sessions:   deps.Sessions.Records(),
	})
}

// AddCommand creates a task from the command line
func AddCommand(deps *Dependencies, title, category, priority string) error {
	task, err := deps.Store.Create(store.Draft{
		Title:    title,
		Category: category,
		Priority: priority,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	deps.save()

	fmt.Printf("✓ Created #%d: %s (%s, %s)\n", task.ID, task.Title, task.Category, task.Priority)
	return nil
}

// ListCommand prints all tasks as a table
func ListCommand(deps *Dependencies) error {
	tasks := deps.Store.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRI\tCATEGORY\tDUE\tTITLE")
	fmt.Fprintln(w, "--\t------\t---\t--------\t---\t-----")

	for _, task := range tasks {
		status := "open"
		if task.Completed {
			status = "done"
		} else if task.IsOverdue(now) {
			status = "late"
		}

		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}

		title := task.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			task.ID, status, task.Priority.Short(), task.Category, due, title)
	}

	return w.Flush()
}

// DoneCommand toggles a task's completion state
func DoneCommand(deps *Dependencies, id int) error {
	task, ok := deps.Store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrNotFound, id)
	}

	deps.Store.ToggleCompletion(id)
	deps.save()

	task, _ = deps.Store.Get(id)
	if task.Completed {
		fmt.Printf("✓ Completed: %s\n", task.Title)
	} else {
		fmt.Printf("Reopened: %s\n", task.Title)
	}
	return nil
}

// StatsCommand prints aggregate statistics
func StatsCommand(deps *Dependencies) error {
	stats := deps.Store.Stats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total tasks\t%d\n", stats.Total)
	fmt.Fprintf(w, "Completed\t%d\n", stats.Completed)
	fmt.Fprintf(w, "Overdue\t%d\n", stats.Overdue)
	fmt.Fprintf(w, "Created today\t%d\n", stats.CreatedToday)
	fmt.Fprintf(w, "Focus sessions\t%d\n", deps.Sessions.Count())
	fmt.Fprintf(w, "Focus minutes\t%d\n", stats.TotalMinutes)
	return w.Flush()
}

// ExportCommand writes a backup document to path
func ExportCommand(deps *Dependencies, path string) error {
	backup := storage.Backup{
		Tasks:      deps.Store.Tasks(),
		Categories: deps.Store.Categories(),
		Sessions:   deps.Sessions.Records(),
	}

	if err := storage.ExportBackup(path, backup); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d tasks to %s\n", len(backup.Tasks), path)
	return nil
}

// ImportCommand replaces the current state with a backup document
func ImportCommand(deps *Dependencies, path string) error {
	backup, err := storage.ImportBackup(path)
	if err != nil {
		return err
	}

	deps.Store.ReplaceAll(backup.Tasks, backup.Categories)
	deps.Sessions.Replace(backup.Sessions)
	deps.save()

	fmt.Printf("✓ Imported %d tasks from %s\n", len(backup.Tasks), path)
	return nil
}

// ClearCommand removes all tasks and sessions
func ClearCommand(deps *Dependencies) error {
	count := deps.Store.Len()
	deps.Store.ClearAll()
	deps.Sessions.Clear()
	deps.Persist.Clear()

	fmt.Printf("✓ Cleared %d tasks\n", count)
	return nil
}

// PrintUsage prints CLI usage information
func PrintUsage() {
	usage := `Usage: tasktide [command] [arguments]

Commands:
  (no command)                Start the Tasktide TUI
  add <title> [cat] [pri]     Add a task (category and priority optional)
  list                        List all tasks
  done <id>                   Toggle a task's completion
  stats                       Show aggregate statistics
  export <path>               Export tasks to a backup file
  import <path>               Import tasks from a backup file
  clear                       Remove all tasks
  help                        Show this help message

Examples:
  tasktide                            # Start TUI
  tasktide add "Buy milk" personal    # Add a personal task
  tasktide done 3                     # Mark task 3 done
  tasktide export backup.json         # Export everything
`
	fmt.Print(usage)
}
