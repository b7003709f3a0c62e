package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ListTools returns tools matching the filter, ordered by ID for stable
// downstream sorting.
func (p *SQLiteProvider) ListTools(ctx context.Context, filter ToolFilter) ([]Tool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	query := `
		SELECT id, name, description, detailed_description, categories,
		       status, suggested_role, submitted_by, website_url,
		       api_endpoint, created_at
		FROM tools
	`

	var conds []string
	var args []any

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			placeholders[i] = "?"
			args = append(args, string(s))
		}
		conds = append(conds, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.SubmittedBy != "" {
		conds = append(conds, "submitted_by = ?")
		args = append(args, filter.SubmittedBy)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query tools: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var tools []Tool
	for rows.Next() {
		tool, err := p.scanTool(rows)
		if err != nil {
			p.logger.Warn().Err(err).Msg("failed to scan tool row")
			continue
		}
		tools = append(tools, tool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate tools: %v", ErrUnavailable, err)
	}

	return tools, nil
}

// scanTool reads one tool row.
func (p *SQLiteProvider) scanTool(rows *sql.Rows) (Tool, error) {
	var tool Tool
	var categoriesJSON, status, createdAt string

	if err := rows.Scan(
		&tool.ID,
		&tool.Name,
		&tool.Description,
		&tool.DetailedDescription,
		&categoriesJSON,
		&status,
		&tool.SuggestedRole,
		&tool.SubmittedBy,
		&tool.WebsiteURL,
		&tool.APIEndpoint,
		&createdAt,
	); err != nil {
		return Tool{}, err
	}

	tool.Status = ToolStatus(status)
	if err := json.Unmarshal([]byte(categoriesJSON), &tool.Categories); err != nil {
		return Tool{}, fmt.Errorf("bad categories for tool %s: %w", tool.ID, err)
	}

	var err error
	tool.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Tool{}, fmt.Errorf("bad created_at for tool %s: %w", tool.ID, err)
	}

	return tool, nil
}

// UpsertTool creates or replaces a tool record.
func (p *SQLiteProvider) UpsertTool(ctx context.Context, tool Tool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	categoriesJSON, err := json.Marshal(tool.Categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	if tool.CreatedAt.IsZero() {
		tool.CreatedAt = time.Now().UTC()
	}
	if tool.Status == "" {
		tool.Status = StatusPending
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO tools
			(id, name, description, detailed_description, categories,
			 status, suggested_role, submitted_by, website_url,
			 api_endpoint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		tool.ID,
		tool.Name,
		tool.Description,
		tool.DetailedDescription,
		string(categoriesJSON),
		string(tool.Status),
		tool.SuggestedRole,
		tool.SubmittedBy,
		tool.WebsiteURL,
		tool.APIEndpoint,
		tool.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: upsert tool: %v", ErrUnavailable, err)
	}
	return nil
}

// SetToolStatus transitions a tool's moderation status.
func (p *SQLiteProvider) SetToolStatus(ctx context.Context, toolID string, status ToolStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	res, err := p.db.ExecContext(ctx,
		"UPDATE tools SET status = ? WHERE id = ?",
		string(status), toolID,
	)
	if err != nil {
		return fmt.Errorf("%w: update tool status: %v", ErrUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("tool %s: %w", toolID, ErrNotFound)
	}
	return nil
}

// GetRole returns the role with the given canonical name.
func (p *SQLiteProvider) GetRole(ctx context.Context, name string) (Role, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	row := p.db.QueryRowContext(ctx,
		"SELECT id, name FROM roles WHERE name = ?", name,
	)

	var role Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Role{}, fmt.Errorf("role %q: %w", name, ErrNotFound)
		}
		return Role{}, fmt.Errorf("%w: query role: %v", ErrUnavailable, err)
	}
	return role, nil
}

// ListRoles returns all roles ordered by name.
func (p *SQLiteProvider) ListRoles(ctx context.Context) ([]Role, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rows, err := p.db.QueryContext(ctx, "SELECT id, name FROM roles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%w: query roles: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			p.logger.Warn().Err(err).Msg("failed to scan role row")
			continue
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate roles: %v", ErrUnavailable, err)
	}
	return roles, nil
}
