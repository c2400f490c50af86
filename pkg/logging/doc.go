// Package logging provides a process-wide structured logger for rowdb.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. Packages obtain
// a logger here rather than building their own slog.Logger values, so that
// level and destination are controlled from main.
//
// Standard output carries the interactive protocol, so the defaults write to
// standard error at WARN level.
//
// # Initialisation
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, OutputPath: "rowdb.log"}); err != nil {
//	    log.Fatal(err)
//	}
//
// If GetLogger is called before Init, a default stderr logger is created
// lazily (via sync.Once).
//
// # Context helpers
//
//	log := logging.WithComponent("session")  // adds component field
//	log := logging.WithStatement("INSERT")   // adds statement field
//	log := logging.WithError(err)            // adds error field
package logging
