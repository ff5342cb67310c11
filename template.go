package ibl

import (
	"context"
	"time"
)

// Template is a stored annotated template page.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the template contains invalid fields.
func (t *Template) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if t.HTML == "" {
		return Errorf(EINVALID, "template HTML required")
	}
	return nil
}

// TemplateService represents a service for managing templates.
type TemplateService interface {
	// CreateTemplate stores a new template.
	// Returns ECONFLICT if a template with the same content exists.
	CreateTemplate(ctx context.Context, template *Template) error

	// FindTemplateByID retrieves a template by ID.
	// Returns ENOTFOUND if the template does not exist.
	FindTemplateByID(ctx context.Context, id string) (*Template, error)

	// FindTemplates retrieves templates matching the filter.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]*Template, error)

	// DeleteTemplate permanently removes a template.
	// Returns ENOTFOUND if the template does not exist.
	DeleteTemplate(ctx context.Context, id string) error
}

// TemplateFilter represents a filter for FindTemplates.
type TemplateFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
