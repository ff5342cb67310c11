package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ibl"
	"github.com/google/uuid"
)

var _ ibl.TemplateService = (*TemplateService)(nil)

// TemplateService implements ibl.TemplateService using SQLite.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

// ContentHash returns the hex xxHash of template markup.
func ContentHash(html string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(html)))
}

// CreateTemplate stores a new template. An empty ID is generated.
func (s *TemplateService) CreateTemplate(ctx context.Context, template *ibl.Template) error {
	if err := template.Validate(); err != nil {
		return err
	}

	hash := ContentHash(template.HTML)
	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM templates WHERE content_hash = ?", hash).Scan(&existing)
	switch {
	case err == nil:
		return ibl.Errorf(ibl.ECONFLICT, "template %s has the same content", existing)
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	if template.ID == "" {
		template.ID = uuid.New().String()
	} else if _, err := s.FindTemplateByID(ctx, template.ID); err == nil {
		return ibl.Errorf(ibl.ECONFLICT, "template %s already exists", template.ID)
	} else if ibl.ErrorCode(err) != ibl.ENOTFOUND {
		return err
	}
	template.ContentHash = hash
	template.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, html, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, template.ID, template.Name, template.HTML, template.ContentHash,
		template.CreatedAt.Format(time.RFC3339))
	return err
}

// FindTemplateByID retrieves a template by ID.
func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*ibl.Template, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, html, content_hash, created_at
		FROM templates
		WHERE id = ?
	`, id)

	t, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ibl.Errorf(ibl.ENOTFOUND, "template %s not found", id)
	}
	return t, err
}

// FindTemplates retrieves templates matching the filter, oldest first so
// extraction order is stable across runs.
func (s *TemplateService) FindTemplates(ctx context.Context, filter ibl.TemplateFilter) ([]*ibl.Template, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, html, content_hash, created_at FROM templates WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	query.WriteString(" ORDER BY created_at, rowid")
	args = appendPage(&query, args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*ibl.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// DeleteTemplate permanently removes a template.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ibl.Errorf(ibl.ENOTFOUND, "template %s not found", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*ibl.Template, error) {
	var t ibl.Template
	var createdAt string
	if err := row.Scan(&t.ID, &t.Name, &t.HTML, &t.ContentHash, &createdAt); err != nil {
		return nil, err
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, ibl.Errorf(ibl.EINTERNAL, "template %s has malformed created_at %q", t.ID, createdAt)
	}
	t.CreatedAt = created
	return &t, nil
}

// appendPage limits the query to the filter's page. SQLite needs a LIMIT
// before it accepts an OFFSET, so a bare offset uses LIMIT -1.
func appendPage(query *strings.Builder, args []any, filter ibl.TemplateFilter) []any {
	switch {
	case filter.Limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	case filter.Offset > 0:
		query.WriteString(" LIMIT -1")
	default:
		return args
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}
	return args
}
