package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/fs"
	iblhttp "github.com/fwojciec/ibl/http"
	iblslog "github.com/fwojciec/ibl/slog"
	"github.com/fwojciec/ibl/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the template store when no template
	// directory is given.
	DB *sqlite.DB

	// Stdin is read by commands given "-" as the page path.
	Stdin io.Reader

	// Services for end-to-end testing.
	TemplateService ibl.TemplateService
	Fetcher         ibl.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
	}
	if m.DB != nil {
		err := m.DB.Close()
		m.DB, m.TemplateService = nil, nil
		return err
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ibl"),
		kong.Description("Extract structured records from HTML pages using annotated templates."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ibl --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Annotating a page needs no template store unless the result is saved.
	if cmd != "annotate" || cli.Annotate.Save != "" {
		if err := m.openTemplates(cli.Templates); err != nil {
			if cli.Templates == "" {
				fmt.Fprintf(stderr, "Hint: Set IBL_DB to use a different database path\n")
			}
			return err
		}
		defer m.Close()
		deps.Templates = iblslog.NewLoggingTemplateService(m.TemplateService, deps.Logger)
	}

	if (cmd == "extract" && cli.Extract.URL != "") || (cmd == "batch" && slices.ContainsFunc(cli.Batch.Pages, isURL)) {
		if m.Fetcher == nil {
			m.Fetcher = iblhttp.NewFetcher(
				iblhttp.WithTimeout(cli.Timeout),
				iblhttp.WithRateLimit(cli.Batch.Rate),
				iblhttp.WithRetryDelays(iblhttp.DefaultRetryDelays()),
			)
		}
		deps.Fetcher = iblslog.NewLoggingFetcher(m.Fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openTemplates selects the template store: a directory of annotated pages
// when dir is set, the SQLite database otherwise.
func (m *Main) openTemplates(dir string) error {
	if m.TemplateService != nil {
		return nil
	}
	if dir != "" {
		m.TemplateService = fs.NewTemplateDir(dir)
		return nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.TemplateService = sqlite.NewTemplateService(m.DB)
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("IBL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ibl.db"
	}
	dir := filepath.Join(home, ".ibl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "templates.db")
}
