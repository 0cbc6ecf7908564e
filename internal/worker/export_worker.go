// Package worker moves recorded transactions from SQLite to the export
// sheet, driven by AMQP messages with a periodic pending scan as backup.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"poongtao/internal/amqp"
	"poongtao/internal/ledger"
	"poongtao/internal/storage"
)

type ExportWorker struct {
	storage   *storage.SQLiteRepository
	sink      ledger.RecordWriter
	batchSize int
}

func NewExportWorker(storage *storage.SQLiteRepository, sink ledger.RecordWriter, batchSize int) *ExportWorker {
	return &ExportWorker{
		storage:   storage,
		sink:      sink,
		batchSize: batchSize,
	}
}

// HandleExportMessage processes a single export message from AMQP.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.RecordExportMessage) error {
	slog.InfoContext(ctx, "Processing export message",
		"transaction_id", msg.TransactionID)
	return w.export(ctx, msg.TransactionID)
}

// ProcessPending exports records that have no exported flag yet. This is
// the backup mechanism in case AMQP messages are lost.
func (w *ExportWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.storage.PendingExports(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending exports: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	for _, id := range pending {
		if err := w.export(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to export pending record",
				"error", err, "transaction_id", id)
			// keep going; the failed record stays pending
		}
	}
	return nil
}

func (w *ExportWorker) export(ctx context.Context, transactionID string) error {
	rec, err := w.storage.GetRecord(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("get record from storage: %w", err)
	}

	ref, err := w.sink.Append(ctx, rec)
	if err != nil {
		if markErr := w.storage.MarkExportError(ctx, transactionID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to record export error",
				"error", markErr, "transaction_id", transactionID)
		}
		return fmt.Errorf("append record to sink: %w", err)
	}

	if err := w.storage.MarkExported(ctx, transactionID); err != nil {
		return fmt.Errorf("mark record exported: %w", err)
	}

	slog.InfoContext(ctx, "Record exported",
		"transaction_id", transactionID, "ref", ref)
	return nil
}
