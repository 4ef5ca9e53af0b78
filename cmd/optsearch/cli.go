package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/optsearch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log queries to stderr"`

	Search SearchCmd `cmd:"" help:"Search a record database by name pattern"`
	Boards BoardsCmd `cmd:"" help:"Browse a board catalog with filters"`
	Import ImportCmd `cmd:"" help:"Import a record database into the local cache"`
	List   ListCmd   `cmd:"" help:"List imported databases"`
	Tui    TuiCmd    `cmd:"" help:"Interactive search in the terminal"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source string `arg:"" help:"Database file path, URL, or imported name"`
	Term   string `arg:"" optional:"" help:"Regular expression over record names"`

	Hash     bool     `help:"Treat the term as a deep-link fragment (exact match)"`
	Filter   []string `short:"F" name:"filter" help:"Filter by field, e.g. arch=arm,riscv (repeatable)"`
	Offset   int      `help:"Zero-based result offset"`
	PageSize int      `name:"page-size" default:"10" help:"Results per page (0 = all)"`
	All      bool     `help:"Match everything when no term or filter is given"`
	HTML     bool     `name:"html" help:"Emit HTML fragments instead of text"`
}

// BoardsCmd is the "boards" subcommand.
type BoardsCmd struct {
	Source string   `arg:"" help:"Database file path, URL, or imported name"`
	Filter []string `short:"F" name:"filter" help:"Filter by field, e.g. arch=arm,riscv (repeatable)"`
	Values string   `help:"List the distinct values of a field instead of records"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name   string `arg:"" help:"Name to store the database under"`
	Source string `arg:"" help:"Database file path or URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// TuiCmd is the "tui" subcommand.
type TuiCmd struct {
	Source  string   `arg:"" help:"Database file path, URL, or imported name"`
	Chip    []string `help:"Add a filter chip for a field (repeatable)"`
	Catalog bool     `help:"Show the full set when no term or filter is given"`
}
