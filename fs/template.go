// Package fs serves annotated templates from a directory of HTML files.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/ibl"
)

// Ext is the file extension of template files.
const Ext = ".html"

// Ensure TemplateDir implements ibl.TemplateService at compile time.
var _ ibl.TemplateService = (*TemplateDir)(nil)

// TemplateDir implements ibl.TemplateService over dir/*.html. A template's
// ID and name are its file name without the extension.
type TemplateDir struct {
	dir string
}

// NewTemplateDir creates a TemplateDir rooted at dir.
func NewTemplateDir(dir string) *TemplateDir {
	return &TemplateDir{dir: dir}
}

// CreateTemplate writes template to a new file. The file appears
// atomically; an existing file is never replaced.
func (d *TemplateDir) CreateTemplate(ctx context.Context, template *ibl.Template) error {
	if template.ID == "" {
		template.ID = template.Name
	}
	if err := template.Validate(); err != nil {
		return err
	}
	path, err := d.path(template.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(d.dir, "."+template.ID+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(template.HTML); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return ibl.Errorf(ibl.ECONFLICT, "template %s already exists", template.ID)
		}
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	template.Name = template.ID
	template.CreatedAt = info.ModTime().UTC()
	return nil
}

// FindTemplateByID reads the template file for id.
func (d *TemplateDir) FindTemplateByID(ctx context.Context, id string) (*ibl.Template, error) {
	path, err := d.path(id)
	if err != nil {
		return nil, err
	}
	return read(path, id)
}

// FindTemplates returns the templates in the directory sorted by ID.
func (d *TemplateDir) FindTemplates(ctx context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ibl.Errorf(ibl.ENOTFOUND, "template directory %s not found", d.dir)
		}
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != Ext {
			continue
		}
		id := strings.TrimSuffix(name, Ext)
		if filter.ID != nil && *filter.ID != id {
			continue
		}
		if filter.Name != nil && *filter.Name != id {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if filter.Offset > 0 {
		ids = ids[min(filter.Offset, len(ids)):]
	}
	if filter.Limit > 0 && filter.Limit < len(ids) {
		ids = ids[:filter.Limit]
	}

	templates := make([]*ibl.Template, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := read(filepath.Join(d.dir, id+Ext), id)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// DeleteTemplate removes the template file for id.
func (d *TemplateDir) DeleteTemplate(ctx context.Context, id string) error {
	path, err := d.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ibl.Errorf(ibl.ENOTFOUND, "template %s not found", id)
		}
		return err
	}
	return nil
}

func (d *TemplateDir) path(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", ibl.Errorf(ibl.EINVALID, "invalid template id %q", id)
	}
	return filepath.Join(d.dir, id+Ext), nil
}

func read(path, id string) (*ibl.Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ibl.Errorf(ibl.ENOTFOUND, "template %s not found", id)
		}
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &ibl.Template{
		ID:        id,
		Name:      id,
		HTML:      string(b),
		CreatedAt: info.ModTime().UTC(),
	}, nil
}
