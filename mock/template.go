package mock

import (
	"context"

	"github.com/fwojciec/ibl"
)

var _ ibl.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of ibl.TemplateService.
type TemplateService struct {
	CreateTemplateFn   func(ctx context.Context, template *ibl.Template) error
	FindTemplateByIDFn func(ctx context.Context, id string) (*ibl.Template, error)
	FindTemplatesFn    func(ctx context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error)
	DeleteTemplateFn   func(ctx context.Context, id string) error
}

func (s *TemplateService) CreateTemplate(ctx context.Context, template *ibl.Template) error {
	return s.CreateTemplateFn(ctx, template)
}

func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*ibl.Template, error) {
	return s.FindTemplateByIDFn(ctx, id)
}

func (s *TemplateService) FindTemplates(ctx context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error) {
	return s.FindTemplatesFn(ctx, filter)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.DeleteTemplateFn(ctx, id)
}
