package store

import (
	"context"
	"fmt"
)

// taskRemover deletes tasks owned by an account from PostgreSQL.
type taskRemover struct {
	db *DB
}

// NewTaskRemover returns a PostgreSQL-backed [OwnedDataRemover] for the tasks table.
func NewTaskRemover(db *DB) OwnedDataRemover {
	return &taskRemover{db: db}
}

func (r *taskRemover) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result, err := r.db.conn(ctx).ExecContext(ctx, deleteTasksByOwner, ownerID)
	if err != nil {
		r.db.logError(ctx, err, "taskRemover.DeleteByOwner", "error deleting owned tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		r.db.logError(ctx, err, "taskRemover.DeleteByOwner", "error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
