package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/ibl"
	"github.com/fwojciec/ibl/extract"
	"github.com/fwojciec/ibl/goquery"
	"github.com/fwojciec/ibl/html"
	"github.com/fwojciec/ibl/htmltomarkdown"
	iblslog "github.com/fwojciec/ibl/slog"
	"github.com/fwojciec/ibl/yaml"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if (c.Page == "") == (c.URL == "") {
		fmt.Fprintf(deps.Stderr, "error: give either a page file or --url\n")
		return ibl.Errorf(ibl.EINVALID, "give either a page file or --url")
	}

	var markup string
	var err error
	if c.URL != "" {
		markup, err = deps.Fetcher.Fetch(deps.Ctx, c.URL)
	} else {
		markup, err = readPage(deps, c.Page)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	extractor, err := newExtractor(deps, c.Schema, c.Trace)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}

	res, err := extractor.Extract(deps.Ctx, markup, ibl.ExtractOptions{
		PreferredTemplate: c.Prefer,
		StopAtFirst:       c.First,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ibl.ErrorMessage(err))
		return err
	}
	if !res.Found() {
		fmt.Fprintln(deps.Stderr, "No records extracted. No template matched the page.")
		res.Records = []*ibl.Record{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// newExtractor compiles every stored template into an extraction engine.
func newExtractor(deps *Dependencies, schemaPath string, trace bool) (ibl.Extractor, error) {
	templates, err := deps.Templates.FindTemplates(deps.Ctx, ibl.TemplateFilter{})
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ibl.Errorf(ibl.ENOTFOUND, "no templates found. Use 'ibl template add' or --templates to provide some")
	}

	logger := deps.logger()
	opts := []extract.Option{
		extract.WithTrace(trace),
		extract.WithLogger(logger),
	}
	if schemaPath != "" {
		schema, err := yaml.LoadSchemaFile(schemaPath, validators())
		if err != nil {
			return nil, err
		}
		opts = append(opts, extract.WithSchema(schema))
	}

	engine, err := extract.NewEngine(html.NewParser(html.WithLogger(logger)), templates, opts...)
	if engine == nil {
		return nil, err
	}
	warnSkipped(deps, err)
	return iblslog.NewLoggingExtractor(engine, logger), nil
}

// warnSkipped reports templates the engine left out.
func warnSkipped(deps *Dependencies, err error) {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return
	}
	for _, e := range joined.Unwrap() {
		var te *extract.TemplateError
		if errors.As(e, &te) {
			fmt.Fprintf(deps.Stderr, "warning: skipping template %s: %s\n", te.TemplateID, ibl.ErrorMessage(te.Err))
		}
	}
}

// validators returns the validators a schema file may name.
func validators() map[string]ibl.Validator {
	m := make(map[string]ibl.Validator, len(ibl.Validators)+2)
	for name, v := range ibl.Validators {
		m[name] = v
	}
	m["text"] = goquery.Text()
	m["markdown"] = htmltomarkdown.Markdown()
	return m
}

// loadPage fetches path when it is an http(s) URL and reads it otherwise.
func loadPage(deps *Dependencies, path string) (string, error) {
	if isURL(path) {
		if deps.Fetcher == nil {
			return "", ibl.Errorf(ibl.EINTERNAL, "no fetcher configured for %s", path)
		}
		return deps.Fetcher.Fetch(deps.Ctx, path)
	}
	return readPage(deps, path)
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// readPage reads a page file, or stdin when path is "-".
func readPage(deps *Dependencies, path string) (string, error) {
	if path == "-" {
		if deps.Stdin == nil {
			return "", ibl.Errorf(ibl.EINVALID, "no input on stdin")
		}
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", ibl.Errorf(ibl.ENOTFOUND, "page %s not found", path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}
