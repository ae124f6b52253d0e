package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore implements driven.HistoryStore using SQLite.
type HistoryStore struct {
	db *sql.DB
}

// HistoryStore returns a history store backed by this database.
func (s *Store) HistoryStore() *HistoryStore {
	return &HistoryStore{db: s.db}
}

// Save records an invocation, replacing any row with the same ID.
func (h *HistoryStore) Save(ctx context.Context, inv domain.Invocation) error {
	if inv.ID == "" {
		return fmt.Errorf("%w: invocation id is required", domain.ErrInvalidInput)
	}

	args := inv.Args
	if args == nil {
		args = []string{}
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal args: %w", err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO invocations
			(id, command, args, result_type, result, error, started_at, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		inv.ID,
		inv.Command,
		string(argsJSON),
		inv.ResultType.String(),
		inv.Result,
		inv.Error,
		inv.StartedAt.UnixNano(),
		int64(inv.Duration),
	)
	if err != nil {
		return fmt.Errorf("save invocation: %w", err)
	}
	return nil
}

// Get retrieves an invocation by ID.
func (h *HistoryStore) Get(ctx context.Context, id string) (*domain.Invocation, error) {
	row := h.db.QueryRowContext(ctx, `
		SELECT id, command, args, result_type, result, error, started_at, duration_ns
		FROM invocations WHERE id = ?
	`, id)

	inv, err := scanInvocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invocation: %w", err)
	}
	return inv, nil
}

// List returns invocations newest first. A limit of zero or less returns all.
func (h *HistoryStore) List(ctx context.Context, limit int) ([]domain.Invocation, error) {
	query := `
		SELECT id, command, args, result_type, result, error, started_at, duration_ns
		FROM invocations ORDER BY started_at DESC, id ASC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = h.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = h.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var invocations []domain.Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		invocations = append(invocations, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return invocations, nil
}

// Clear removes all invocations.
func (h *HistoryStore) Clear(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, "DELETE FROM invocations"); err != nil {
		return fmt.Errorf("clear invocations: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvocation(row scanner) (*domain.Invocation, error) {
	var (
		inv        domain.Invocation
		argsJSON   string
		resultType string
		startedAt  int64
		durationNS int64
	)
	err := row.Scan(
		&inv.ID,
		&inv.Command,
		&argsJSON,
		&resultType,
		&inv.Result,
		&inv.Error,
		&startedAt,
		&durationNS,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(argsJSON), &inv.Args); err != nil {
		return nil, fmt.Errorf("unmarshal args: %w", err)
	}
	inv.ResultType, _ = domain.ParseDataType(resultType)
	inv.StartedAt = time.Unix(0, startedAt)
	inv.Duration = time.Duration(durationNS)
	return &inv, nil
}
