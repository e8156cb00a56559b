// Package main provides the entry point for the Tasktide TUI application.
//
// Tasktide is a terminal task manager with a category board, subtasks,
// and a pomodoro-style focus timer. Run it with no arguments to start
// the TUI, or use a subcommand for scripted access.
package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elenalowe/tasktide/internal/app"
	"github.com/elenalowe/tasktide/internal/cli"
	"github.com/elenalowe/tasktide/internal/config"
	"github.com/elenalowe/tasktide/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		if err := runCommand(cfg, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	kv, err := storage.NewFileKV(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg, kv, nil)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCommand dispatches a CLI subcommand
func runCommand(cfg *config.Config, command string, args []string) error {
	if command == "help" || command == "--help" || command == "-h" {
		cli.PrintUsage()
		return nil
	}

	deps, err := cli.NewDependencies(cfg, nil)
	if err != nil {
		return err
	}

	switch command {
	case "add":
		if len(args) < 1 {
			return fmt.Errorf("usage: tasktide add <title> [category] [priority]")
		}
		category, priority := "", ""
		if len(args) > 1 {
			category = args[1]
		}
		if len(args) > 2 {
			priority = args[2]
		}
		return cli.AddCommand(deps, args[0], category, priority)

	case "list":
		return cli.ListCommand(deps)

	case "done":
		if len(args) < 1 {
			return fmt.Errorf("usage: tasktide done <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %s", args[0])
		}
		return cli.DoneCommand(deps, id)

	case "stats":
		return cli.StatsCommand(deps)

	case "export":
		if len(args) < 1 {
			return fmt.Errorf("usage: tasktide export <path>")
		}
		return cli.ExportCommand(deps, args[0])

	case "import":
		if len(args) < 1 {
			return fmt.Errorf("usage: tasktide import <path>")
		}
		return cli.ImportCommand(deps, args[0])

	case "clear":
		return cli.ClearCommand(deps)

	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
