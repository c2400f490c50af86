package main

import (
	"fmt"
	"log"
	"os"
	"rowdb/pkg/config"
	"rowdb/pkg/database"
	"rowdb/pkg/logging"
	"rowdb/pkg/repl"
	"rowdb/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.LoggingConfig()); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()
	logging.Debug("starting", "config", cfg.String())

	db := database.NewDatabase()

	if cfg.ImportFile != "" {
		exited, err := importCommands(db, cfg.ImportFile)
		if err != nil {
			logging.Error("import failed", "file", cfg.ImportFile, "error", err)
			log.Fatalf("Failed to import commands: %v", err)
		}
		if exited {
			return
		}
	}

	if cfg.TUI {
		err = startInteractiveMode(db)
	} else {
		err = repl.New(db, os.Stdout, repl.WithPrompt(cfg.Prompt)).Run(os.Stdin)
	}
	if err != nil {
		logging.Error("command loop failed", "error", err)
		log.Fatal(err)
	}
}

// importCommands runs a file of commands before the interactive loop. It
// reports whether the file ended the session with the exit meta-command.
func importCommands(db *database.Database, filename string) (bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return false, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	summary, err := repl.New(db, os.Stdout).RunScript(f)
	if err != nil {
		return false, err
	}

	logging.Info("import completed",
		"file", filename,
		"lines", summary.Lines,
		"failed", summary.Failed,
		"exited", summary.Exited)
	return summary.Exited, nil
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(db *database.Database) error {
	showBanner()

	p := tea.NewProgram(ui.NewModel(db), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func showBanner() {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Println(style.Render("rowdb: insert <id> <username> <email> | select | .exit"))
}
