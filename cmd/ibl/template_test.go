package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ibl"
	main "github.com/fwojciec/ibl/cmd/ibl"
	"github.com/fwojciec/ibl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores the annotated page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := writeFile(t, dir, "product.html", productTemplate)

		var created *ibl.Template
		templates := &mock.TemplateService{
			CreateTemplateFn: func(_ context.Context, template *ibl.Template) error {
				template.ID = "generated-id"
				created = template
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Templates: templates}

		cmd := &main.TemplateAddCmd{Name: "product", File: file}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "product", created.Name)
		assert.Equal(t, productTemplate, created.HTML)
		assert.Contains(t, stdout.String(), `Added template "product" (generated-id, 2 annotations)`)
		assert.Empty(t, stderr.String())
	})

	t.Run("warns about pages without annotations", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := writeFile(t, dir, "plain.html", productPage)
		templates := &mock.TemplateService{
			CreateTemplateFn: func(_ context.Context, _ *ibl.Template) error { return nil },
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Templates: templates}

		cmd := &main.TemplateAddCmd{Name: "plain", File: file}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "has no annotations")
	})

	t.Run("rejects unbalanced variant annotations", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := writeFile(t, dir, "broken.html",
			`<div data-scrapy-annotate='{"variant":1,"annotations":{"content":"a"}}'>`+
				`<p data-scrapy-annotate='{"variant":2,"annotations":{"content":"b"}}'>x</div></p>`)
		templates := &mock.TemplateService{
			CreateTemplateFn: func(_ context.Context, _ *ibl.Template) error {
				t.Fatal("CreateTemplate should not be called")
				return nil
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Templates: templates}

		cmd := &main.TemplateAddCmd{Name: "broken", File: file}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ibl.EINVALID, ibl.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		cmd := &main.TemplateAddCmd{Name: "product", File: "/nonexistent/product.html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ibl.ENOTFOUND, ibl.ErrorCode(err))
	})
}

func TestTemplateListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists templates with ID, name, and date", func(t *testing.T) {
		t.Parallel()

		var gotFilter ibl.TemplateFilter
		templates := &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error) {
				gotFilter = filter
				return []*ibl.Template{
					{ID: "tpl-1", Name: "product", CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
					{ID: "tpl-2", Name: "listing"},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Templates: templates}

		cmd := &main.TemplateListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Nil(t, gotFilter.Name)
		assert.Contains(t, stdout.String(), "tpl-1  product  2025-01-15")
		assert.Contains(t, stdout.String(), "tpl-2  listing")
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		var gotFilter ibl.TemplateFilter
		templates := &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error) {
				gotFilter = filter
				return nil, nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Templates: templates}

		cmd := &main.TemplateListCmd{Name: "product"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Name)
		assert.Equal(t, "product", *gotFilter.Name)
	})

	t.Run("shows helpful message when no templates exist", func(t *testing.T) {
		t.Parallel()

		templates := &mock.TemplateService{
			FindTemplatesFn: func(_ context.Context, _ ibl.TemplateFilter) ([]*ibl.Template, error) {
				return []*ibl.Template{}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Templates: templates}

		cmd := &main.TemplateListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No templates found")
	})
}

func TestTemplateDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes template by ID", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		templates := &mock.TemplateService{
			DeleteTemplateFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Templates: templates}

		cmd := &main.TemplateDeleteCmd{ID: "tpl-1", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "tpl-1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted template "tpl-1"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		cmd := &main.TemplateDeleteCmd{ID: "tpl-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ibl.EINVALID, ibl.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns error when template not found", func(t *testing.T) {
		t.Parallel()

		templates := &mock.TemplateService{
			DeleteTemplateFn: func(_ context.Context, id string) error {
				return ibl.Errorf(ibl.ENOTFOUND, "template %s not found", id)
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Templates: templates}

		cmd := &main.TemplateDeleteCmd{ID: "missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ibl.ENOTFOUND, ibl.ErrorCode(err))
		assert.Contains(t, stderr.String(), "ibl template list")
		assert.Empty(t, stdout.String())
	})
}
