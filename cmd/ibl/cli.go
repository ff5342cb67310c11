package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ibl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Templates ibl.TemplateService
	Fetcher   ibl.Fetcher
	Logger    *slog.Logger
}

// logger returns the configured logger, or one that discards output.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Templates string        `short:"t" help:"Directory of annotated template pages (default: template database)"`
	Verbose   bool          `short:"v" help:"Log debug output to stderr"`
	Timeout   time.Duration `default:"30s" help:"Timeout for fetching pages"`

	Extract  ExtractCmd  `cmd:"" help:"Extract records from a page"`
	Batch    BatchCmd    `cmd:"" help:"Extract records from many pages"`
	Annotate AnnotateCmd `cmd:"" help:"Annotate a sample page with CSS selectors"`
	Template TemplateCmd `cmd:"" help:"Manage stored templates"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Page   string `arg:"" optional:"" help:"Page file, or - for stdin"`
	URL    string `short:"u" name:"url" help:"Fetch the page from a URL"`
	Schema string `short:"s" help:"YAML item schema"`
	Prefer string `short:"p" help:"Try this template ID first"`
	First  bool   `help:"Only try the first template"`
	Trace  bool   `help:"Attach extraction traces to records"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Pages       []string `arg:"" help:"Page files or URLs"`
	Schema      string   `short:"s" help:"YAML item schema"`
	Prefer      string   `short:"p" help:"Try this template ID first"`
	First       bool     `help:"Only try the first template"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Duplicates  bool     `default:"true" negatable:"" help:"Skip pages identical to one already processed"`
	Rate        float64  `default:"1" help:"Requests per second to each host when fetching URLs"`
}

// AnnotateCmd is the "annotate" subcommand.
type AnnotateCmd struct {
	Page          string   `arg:"" help:"Sample page file, or - for stdin"`
	Fields        []string `short:"f" name:"field" help:"Annotate SELECTOR=ATTR[@SOURCE] (repeatable)"`
	Variants      []string `name:"variant" help:"Annotate SELECTOR=ATTR[@SOURCE] with one variant per match (repeatable)"`
	Required      []string `short:"r" help:"Mark ATTR as required (repeatable)"`
	Ignore        []string `short:"i" help:"Ignore elements matching SELECTOR (repeatable)"`
	IgnoreBeneath []string `name:"ignore-beneath" help:"Ignore everything after elements matching SELECTOR (repeatable)"`
	Save          string   `help:"Store the result as a template with this name"`
}

// TemplateCmd groups the template management subcommands.
type TemplateCmd struct {
	Add    TemplateAddCmd    `cmd:"" help:"Store an annotated template page"`
	List   TemplateListCmd   `cmd:"" help:"List stored templates"`
	Delete TemplateDeleteCmd `cmd:"" help:"Delete a stored template"`
}

// TemplateAddCmd is the "template add" subcommand.
type TemplateAddCmd struct {
	Name string `arg:"" help:"Template name"`
	File string `arg:"" help:"Annotated template file, or - for stdin"`
	ID   string `help:"Template ID (default: generated)"`
}

// TemplateListCmd is the "template list" subcommand.
type TemplateListCmd struct {
	Name string `short:"n" help:"Only list templates with this name"`
}

// TemplateDeleteCmd is the "template delete" subcommand.
type TemplateDeleteCmd struct {
	ID    string `arg:"" help:"Template ID"`
	Force bool   `help:"Confirm deletion"`
}
