package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/platform/logger"
	"github.com/calebmaier/taskline-api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultTable is the collection table used when no table name is configured.
const DefaultTable = "tasks"

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL table of JSONB documents as the storage backend.
//
// Each row holds one task document under a storage-generated record ID;
// the task's logical ID lives inside the document and is kept unique by an
// expression index on (doc->>'id').
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger

	insertSQL string
	listSQL   string
	updateSQL string
	deleteSQL string
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller, and the name of the
// collection table. An empty table name falls back to DefaultTable.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, table string, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if table == "" {
		table = DefaultTable
	}
	if logger == nil {
		logger = slog.Default()
	}

	// The table name comes from configuration, not from request input, but
	// it still goes through identifier quoting before entering SQL text.
	tbl := pgx.Identifier{table}.Sanitize()

	return &PostgresTaskStore{
		db:        db,
		logger:    logger.With(slog.String("component", "task_store")),
		insertSQL: fmt.Sprintf(`INSERT INTO %s (record_id, doc) VALUES ($1, $2)`, tbl),
		listSQL:   fmt.Sprintf(`SELECT doc FROM %s`, tbl),
		updateSQL: fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE (doc->>'id')::bigint = $1`, tbl),
		deleteSQL: fmt.Sprintf(`DELETE FROM %s WHERE (doc->>'id')::bigint = $1`, tbl),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Insert implements store.TaskStore.Insert.
// It writes the task as a new JSONB document and returns the generated
// storage record ID. Returns store.ErrTaskExists if a document with the
// same logical ID already exists.
func (s *PostgresTaskStore) Insert(ctx context.Context, task *domain.Task) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc, err := json.Marshal(task)
	if err != nil {
		return uuid.Nil, store.NewStoreError("task", "insert", "failed to encode document", err)
	}

	recordID := uuid.New()

	if _, err := s.db.ExecContext(ctx, s.insertSQL, recordID, doc); err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate logical ID during task insert",
				slog.Int64("task_id", task.ID),
				slog.String("error", err.Error()))
			return uuid.Nil, fmt.Errorf("%w: %v", store.ErrTaskExists, err)
		}

		log.Error("failed to insert task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return uuid.Nil, store.NewStoreError("task", "insert", "exec failed", MapError(err))
	}

	log.Debug("task inserted",
		slog.Int64("task_id", task.ID),
		slog.String("record_id", recordID.String()))
	return recordID, nil
}

// ListAll implements store.TaskStore.ListAll.
// It returns every task document in the collection in natural storage order.
func (s *PostgresTaskStore) ListAll(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, s.listSQL)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := []domain.Task{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}

		var task domain.Task
		if err := json.Unmarshal(doc, &task); err != nil {
			return nil, store.NewStoreError("task", "list", "failed to decode document", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "iteration failed", MapError(err))
	}

	return tasks, nil
}

// UpdateFields implements store.TaskStore.UpdateFields.
// It merges the patch into the document whose logical ID equals id and
// returns the matched-document count. Fields absent from the patch are left
// untouched by the JSONB merge. A zero count means no document matched; it
// is reported as a count, not an error.
func (s *PostgresTaskStore) UpdateFields(ctx context.Context, id int64, patch domain.TaskPatch) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fields, err := json.Marshal(patch)
	if err != nil {
		return 0, store.NewStoreError("task", "update", "failed to encode patch", err)
	}

	result, err := s.db.ExecContext(ctx, s.updateSQL, id, fields)
	if err != nil {
		log.Error("failed to update task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "update", "exec failed", MapError(err))
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("task", "update", "failed to get rows affected", err)
	}

	log.Debug("task update applied",
		slog.Int64("task_id", id),
		slog.Int64("matched", count))
	return count, nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// It removes the document whose logical ID equals id and returns the
// deleted-document count (0 or 1).
func (s *PostgresTaskStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.deleteSQL, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "delete", "exec failed", MapError(err))
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError("task", "delete", "failed to get rows affected", err)
	}

	log.Debug("task delete applied",
		slog.Int64("task_id", id),
		slog.Int64("deleted", count))
	return count, nil
}
