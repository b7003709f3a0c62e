package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordInteraction persists an interaction event. An ID is assigned if the
// event does not carry one.
func (p *SQLiteProvider) RecordInteraction(ctx context.Context, ev Interaction) error {
	if !ev.Type.Valid() {
		return fmt.Errorf("invalid interaction type %q", ev.Type)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO interactions
			(id, user_id, tool_id, user_role, type, source, rating,
			 session_duration, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ev.ID,
		ev.UserID,
		ev.ToolID,
		ev.UserRole,
		string(ev.Type),
		ev.Source,
		ev.Rating,
		ev.SessionDuration,
		ev.OccurredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: insert interaction: %v", ErrUnavailable, err)
	}
	return nil
}

// ListInteractions returns interactions matching the filter, most recent
// first.
func (p *SQLiteProvider) ListInteractions(ctx context.Context, filter InteractionFilter) ([]Interaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	query := `
		SELECT id, user_id, tool_id, user_role, type, source, rating,
		       session_duration, occurred_at
		FROM interactions
	`

	var conds []string
	var args []any

	if filter.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.ToolID != "" {
		conds = append(conds, "tool_id = ?")
		args = append(args, filter.ToolID)
	}
	if len(filter.Types) > 0 {
		placeholders := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			placeholders[i] = "?"
			args = append(args, string(t))
		}
		conds = append(conds, fmt.Sprintf("type IN (%s)", strings.Join(placeholders, ", ")))
	}
	if !filter.Since.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY occurred_at DESC"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query interactions: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var events []Interaction
	for rows.Next() {
		var ev Interaction
		var typ, occurredAt string

		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.ToolID,
			&ev.UserRole,
			&typ,
			&ev.Source,
			&ev.Rating,
			&ev.SessionDuration,
			&occurredAt,
		); err != nil {
			p.logger.Warn().Err(err).Msg("failed to scan interaction row")
			continue
		}

		ev.Type = InteractionType(typ)
		ev.OccurredAt, err = time.Parse(time.RFC3339, occurredAt)
		if err != nil {
			p.logger.Warn().Err(err).Str("interaction", ev.ID).Msg("failed to parse occurred_at")
			continue
		}

		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate interactions: %v", ErrUnavailable, err)
	}

	return events, nil
}
