package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ibl"
)

// Ensure LoggingTemplateService implements ibl.TemplateService.
var _ ibl.TemplateService = (*LoggingTemplateService)(nil)

// LoggingTemplateService wraps a TemplateService with debug logging.
type LoggingTemplateService struct {
	next   ibl.TemplateService
	logger *slog.Logger
}

// NewLoggingTemplateService creates a new LoggingTemplateService.
func NewLoggingTemplateService(next ibl.TemplateService, logger *slog.Logger) *LoggingTemplateService {
	return &LoggingTemplateService{next: next, logger: logger}
}

func (s *LoggingTemplateService) CreateTemplate(ctx context.Context, template *ibl.Template) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create template",
			"id", template.ID,
			"name", template.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTemplate(ctx, template)
}

func (s *LoggingTemplateService) FindTemplateByID(ctx context.Context, id string) (template *ibl.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplateByID(ctx, id)
}

func (s *LoggingTemplateService) FindTemplates(ctx context.Context, filter ibl.TemplateFilter) (templates []*ibl.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find templates",
			"count", len(templates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplates(ctx, filter)
}

func (s *LoggingTemplateService) DeleteTemplate(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete template",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteTemplate(ctx, id)
}
