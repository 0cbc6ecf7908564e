package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"poongtao/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the persistent ledger backend. Besides the webhook
// read/write path it keeps an export queue (exported flag per record) for
// the Google Sheets worker.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ledger.RecordWriter. The ref is the transaction id.
// Records are immutable; there is no update path.
func (r *SQLiteRepository) Append(ctx context.Context, rec core.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (transaction_id, user_id, type, amount_satang, note, created_at, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TransactionID, rec.UserID, string(rec.Type), rec.Amount.Satang,
		rec.Note, rec.CreatedAt, rec.Date, rec.Time,
	)
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to SQLite",
		"transaction_id", rec.TransactionID,
		"type", string(rec.Type),
		"amount_satang", rec.Amount.Satang,
		"date", rec.Date)

	return rec.TransactionID, nil
}

// ListDay implements ledger.DayReader. The query is unpaginated; a user's
// single day is small by construction.
func (r *SQLiteRepository) ListDay(ctx context.Context, userID, date string) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id, user_id, type, amount_satang, note, created_at, date, time
		FROM records
		WHERE user_id = ? AND date = ?
		ORDER BY created_at, id`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query day records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("scan day records: %w", err)
	}
	return records, nil
}

// GetRecord fetches one record by transaction id for the export worker.
func (r *SQLiteRepository) GetRecord(ctx context.Context, transactionID string) (core.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT transaction_id, user_id, type, amount_satang, note, created_at, date, time
		FROM records
		WHERE transaction_id = ?`,
		transactionID,
	)
	rec, err := scanRecord(row)
	if err != nil {
		return core.Record{}, fmt.Errorf("get record %s: %w", transactionID, err)
	}
	return rec, nil
}

// PendingExports returns transaction ids not yet exported, oldest first.
// This backs the worker's periodic scan for messages lost in transit.
func (r *SQLiteRepository) PendingExports(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id
		FROM records
		WHERE exported = 0
		ORDER BY created_at, id
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query pending exports: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending export: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkExported flags a record as synced to the sheet.
func (r *SQLiteRepository) MarkExported(ctx context.Context, transactionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET exported = 1 WHERE transaction_id = ?`, transactionID); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	slog.InfoContext(ctx, "Record marked as exported", "transaction_id", transactionID)
	return nil
}

// MarkExportError counts a failed export attempt; the record stays pending
// and is retried on the next scan.
func (r *SQLiteRepository) MarkExportError(ctx context.Context, transactionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET export_attempts = export_attempts + 1 WHERE transaction_id = ?`, transactionID); err != nil {
		return fmt.Errorf("mark export error: %w", err)
	}
	slog.WarnContext(ctx, "Record export attempt failed", "transaction_id", transactionID)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (core.Record, error) {
	var (
		rec     core.Record
		recType string
		satang  int64
	)
	if err := row.Scan(&rec.TransactionID, &rec.UserID, &recType, &satang,
		&rec.Note, &rec.CreatedAt, &rec.Date, &rec.Time); err != nil {
		return core.Record{}, err
	}
	rec.Type = core.RecordType(recType)
	rec.Amount = core.Money{Satang: satang}
	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]core.Record, error) {
	var out []core.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
