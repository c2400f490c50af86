// Package repl runs the line-oriented command loop: print the prompt, read a
// line, execute it against the database, print the result, repeat.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"rowdb/pkg/config"
	"rowdb/pkg/database"
	dberror "rowdb/pkg/error"
	"rowdb/pkg/logging"
)

const component = "REPL"

// REPL reads commands from an input stream and writes results to an output
// stream. It owns no state of its own besides the streams; the table lives in
// the database it was given.
type REPL struct {
	db     *database.Database
	out    io.Writer
	prompt string
	log    *slog.Logger
}

// Option configures a REPL.
type Option func(*REPL)

// WithPrompt replaces the default "db>" prompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

func New(db *database.Database, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		db:     db,
		out:    out,
		prompt: config.DefaultPrompt,
		log:    logging.WithComponent("repl"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loops until the exit meta-command or the end of in. Both return nil;
// only I/O failures are reported as errors.
func (r *REPL) Run(in io.Reader) error {
	reader := bufio.NewReader(in)
	r.log.Debug("loop started")

	for {
		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return writeError(err)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return dberror.New(dberror.ErrCategorySystem, dberror.CodeReadInputFailed, "failed to read input").
				WithCause(readErr).
				In("ReadLine", component)
		}

		// A final line without a newline still counts.
		if line != "" {
			exit, err := r.apply(line)
			if err != nil || exit {
				return err
			}
		}

		if readErr != nil {
			r.log.Debug("end of input")
			return nil
		}
	}
}

// ScriptSummary reports what RunScript did.
type ScriptSummary struct {
	Lines  int
	Failed int
	Exited bool
}

// RunScript executes every line of in without printing prompts. Results and
// error messages are written as in Run. Blank lines are skipped. Execution
// stops early at the exit meta-command, reported through Exited.
func (r *REPL) RunScript(in io.Reader) (ScriptSummary, error) {
	var summary ScriptSummary
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if isBlank(line) {
			continue
		}

		summary.Lines++
		res := r.db.Execute(line)
		if res.Err != nil {
			summary.Failed++
		}
		if err := r.print(res); err != nil {
			return summary, err
		}
		if res.Exit {
			summary.Exited = true
			return summary, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return summary, dberror.New(dberror.ErrCategorySystem, dberror.CodeImportFailed, "failed to read script").
			WithCause(err).
			In("RunScript", component)
	}
	return summary, nil
}

func (r *REPL) apply(line string) (bool, error) {
	res := r.db.Execute(line)
	if err := r.print(res); err != nil {
		return false, err
	}
	return res.Exit, nil
}

func (r *REPL) print(res database.Result) error {
	msg := res.Display()
	if msg == "" {
		return nil
	}
	if _, err := fmt.Fprintln(r.out, msg); err != nil {
		return writeError(err)
	}
	return nil
}

func writeError(err error) error {
	return dberror.New(dberror.ErrCategorySystem, dberror.CodeWriteOutputFailed, "failed to write output").
		WithCause(err).
		In("Write", component)
}

func isBlank(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}
