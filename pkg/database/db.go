package database

import (
	"errors"
	"fmt"
	"log/slog"
	"rowdb/pkg/command"
	dberror "rowdb/pkg/error"
	"rowdb/pkg/logging"
	"rowdb/pkg/row"
	"rowdb/pkg/table"
	"strings"
)

const component = "Database"

// Database owns the table and applies one input line at a time. It is the
// single controller threaded through the command loop; it is not safe for
// concurrent use.
type Database struct {
	table *table.Table
	stats DatabaseStats
	log   *slog.Logger
}

// DatabaseStats tracks what the loop has done so far.
type DatabaseStats struct {
	StatementsExecuted int64
	RowsInserted       int64
	ErrorCount         int64
}

// Result is the outcome of executing one line.
type Result struct {
	Command command.Classification

	// Output is the text to display on success; empty for a silent insert.
	Output string

	// Rows holds the selected rows for a select statement.
	Rows []row.Row

	// Err is a *dberror.DBError for every recoverable failure.
	Err error

	// Exit is set when the line was the exit meta-command.
	Exit bool
}

// Display returns what the loop should print for this result: the user
// message of the error, or Output.
func (r Result) Display() string {
	if r.Err == nil {
		return r.Output
	}

	var dbErr *dberror.DBError
	if errors.As(r.Err, &dbErr) {
		return dbErr.Message
	}
	return r.Err.Error()
}

func NewDatabase() *Database {
	return &Database{
		table: table.New(),
		log:   logging.WithComponent("database"),
	}
}

// Execute trims and classifies line, then runs it. Meta-commands and
// statements are recognized by command.Classify; inserts are decoded by
// row.Decode and appended, selects read the whole table.
func (db *Database) Execute(line string) Result {
	line = strings.TrimSpace(line)
	cmd := command.Classify(line)
	db.log.Debug("classified input", "category", cmd.Category, "input", line)

	var res Result
	switch {
	case cmd.IsMeta():
		res = db.executeMeta(cmd)
	case cmd.IsStatement():
		res = db.executeStatement(cmd)
	case cmd.Category == command.CategoryUnrecognizedMeta:
		res = Result{Err: dberror.New(dberror.ErrCategoryUser, dberror.CodeUnrecognizedMetaCommand,
			fmt.Sprintf("unrecognized meta command: %s", cmd.Input)).In("Execute", component)}
	default:
		res = Result{Err: dberror.New(dberror.ErrCategoryUser, dberror.CodeUnrecognizedInput,
			fmt.Sprintf("Unrecognized input: %s", cmd.Input)).In("Execute", component)}
	}

	res.Command = cmd
	if res.Err != nil {
		db.recordError(res.Err)
	}
	return res
}

func (db *Database) executeMeta(cmd command.Classification) Result {
	switch cmd.Meta {
	case command.MetaExit:
		db.log.Info("exit requested", "rows", db.table.Len())
		return Result{Exit: true}
	default:
		return Result{Err: dberror.New(dberror.ErrCategoryUser, dberror.CodeUnrecognizedMetaCommand,
			fmt.Sprintf("unrecognized meta command: %s", cmd.Input)).In("Execute", component)}
	}
}

func (db *Database) executeStatement(cmd command.Classification) Result {
	log := logging.WithStatement(cmd.Statement.String())

	switch cmd.Statement {
	case command.Insert:
		r, err := row.Decode(cmd.Input)
		if err != nil {
			return Result{Err: insertError(err)}
		}
		db.table.Insert(r)
		db.stats.StatementsExecuted++
		db.stats.RowsInserted++
		log.Debug("row appended", "id", r.ID, "rows", db.table.Len())
		return Result{}

	case command.Select:
		rows := db.table.SelectAll()
		db.stats.StatementsExecuted++
		log.Debug("table scanned", "rows", len(rows))
		return Result{Rows: rows, Output: table.Format(rows)}

	default:
		return Result{Err: dberror.New(dberror.ErrCategoryUser, dberror.CodeUnrecognizedInput,
			fmt.Sprintf("Unrecognized input: %s", cmd.Input)).In("Execute", component)}
	}
}

func insertError(err error) *dberror.DBError {
	dbErr := dberror.New(dberror.ErrCategoryUser, dberror.CodeInsertParseFailed,
		fmt.Sprintf("Encountered error when parsing insert: %v", err)).
		WithCause(err).
		In("Insert", component)

	var decErr *row.DecodeError
	if errors.As(err, &decErr) {
		dbErr.WithDetail(decErr.Kind.String())
	}
	return dbErr
}

func (db *Database) recordError(err error) {
	db.stats.ErrorCount++
	db.log.Warn("command failed", "code", dberror.CodeOf(err), "error", err)
}

// Table returns the table owned by this database.
func (db *Database) Table() *table.Table {
	return db.table
}

// GetStatistics returns a copy of the current counters.
func (db *Database) GetStatistics() DatabaseInfo {
	return DatabaseInfo{
		RowCount:           db.table.Len(),
		StatementsExecuted: db.stats.StatementsExecuted,
		RowsInserted:       db.stats.RowsInserted,
		ErrorCount:         db.stats.ErrorCount,
	}
}

// DatabaseInfo contains database metadata
type DatabaseInfo struct {
	RowCount           int
	StatementsExecuted int64
	RowsInserted       int64
	ErrorCount         int64
}
