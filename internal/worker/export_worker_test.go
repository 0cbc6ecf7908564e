package worker

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"poongtao/internal/amqp"
	"poongtao/internal/core"
	"poongtao/internal/storage"
)

type fakeSink struct {
	mu    sync.Mutex
	items []core.Record
	err   error
}

func (f *fakeSink) Append(_ context.Context, r core.Record) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, r)
	return "Records!A1:F1", nil
}

func newTestRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedRecord(t *testing.T, repo *storage.SQLiteRepository, at time.Time) core.Record {
	t.Helper()
	rec := core.NewRecord(core.Expense, "U1", "ข้าวเที่ยง", core.Money{Satang: 7075}, at)
	if _, err := repo.Append(context.Background(), rec); err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return rec
}

func TestHandleExportMessageMarksExported(t *testing.T) {
	repo := newTestRepo(t)
	sink := &fakeSink{}
	w := NewExportWorker(repo, sink, 10)
	ctx := context.Background()

	rec := seedRecord(t, repo, time.Unix(1735689600, 0))

	msg := &amqp.RecordExportMessage{TransactionID: rec.TransactionID}
	if err := w.HandleExportMessage(ctx, msg); err != nil {
		t.Fatalf("handle message: %v", err)
	}

	if len(sink.items) != 1 || sink.items[0].TransactionID != rec.TransactionID {
		t.Fatalf("expected record in sink, got %+v", sink.items)
	}
	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending records, got %+v", pending)
	}
}

func TestHandleExportMessageUnknownRecord(t *testing.T) {
	repo := newTestRepo(t)
	w := NewExportWorker(repo, &fakeSink{}, 10)

	msg := &amqp.RecordExportMessage{TransactionID: "missing"}
	if err := w.HandleExportMessage(context.Background(), msg); err == nil {
		t.Fatalf("expected error for unknown transaction id")
	}
}

func TestExportSinkFailureKeepsRecordPending(t *testing.T) {
	repo := newTestRepo(t)
	sink := &fakeSink{err: errors.New("sheet unavailable")}
	w := NewExportWorker(repo, sink, 10)
	ctx := context.Background()

	rec := seedRecord(t, repo, time.Unix(1735689600, 0))

	msg := &amqp.RecordExportMessage{TransactionID: rec.TransactionID}
	if err := w.HandleExportMessage(ctx, msg); err == nil {
		t.Fatalf("expected sink error")
	}

	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0] != rec.TransactionID {
		t.Fatalf("expected record to stay pending, got %+v", pending)
	}
}

func TestProcessPendingDrainsBacklog(t *testing.T) {
	repo := newTestRepo(t)
	sink := &fakeSink{}
	w := NewExportWorker(repo, sink, 10)
	ctx := context.Background()

	base := time.Unix(1735689600, 0)
	for i := 0; i < 3; i++ {
		seedRecord(t, repo, base.Add(time.Duration(i)*time.Second))
	}

	if err := w.ProcessPending(ctx); err != nil {
		t.Fatalf("process pending: %v", err)
	}

	if len(sink.items) != 3 {
		t.Fatalf("expected 3 exported records, got %d", len(sink.items))
	}
	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty backlog, got %+v", pending)
	}
}

func TestProcessPendingContinuesPastFailures(t *testing.T) {
	repo := newTestRepo(t)
	sink := &fakeSink{err: errors.New("sheet unavailable")}
	w := NewExportWorker(repo, sink, 10)
	ctx := context.Background()

	seedRecord(t, repo, time.Unix(1735689600, 0))
	seedRecord(t, repo, time.Unix(1735689601, 0))

	// per-record failures are logged, not returned
	if err := w.ProcessPending(ctx); err != nil {
		t.Fatalf("process pending: %v", err)
	}

	pending, err := repo.PendingExports(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected both records still pending, got %+v", pending)
	}
}

func TestProcessPendingEmpty(t *testing.T) {
	repo := newTestRepo(t)
	w := NewExportWorker(repo, &fakeSink{}, 10)
	if err := w.ProcessPending(context.Background()); err != nil {
		t.Fatalf("process pending on empty backlog: %v", err)
	}
}
