// Package services orchestrates the classify → persist → reply-text flow.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"poongtao/internal/amqp"
	"poongtao/internal/classify"
	"poongtao/internal/core"
	"poongtao/internal/ledger"
	"poongtao/internal/summary"
)

// User-facing fallback strings. Business failures never bubble past this
// layer; they become one of these replies.
const (
	replyProcessingError = "เกิดข้อผิดพลาดในการประมวลผลข้อความ"
	replySummaryError    = "ไม่สามารถดึงข้อมูลสรุปได้"
)

// LedgerService turns one inbound message into its reply text, persisting
// income/expense records and computing daily summaries along the way.
type LedgerService struct {
	store ledger.Store
	queue *amqp.Client // optional; nil disables export publishing

	// Now is the clock used for record timestamps and "today". Tests
	// override it; production leaves the default.
	Now func() time.Time
}

func NewLedgerService(store ledger.Store, queue *amqp.Client) *LedgerService {
	return &LedgerService{
		store: store,
		queue: queue,
		Now:   time.Now,
	}
}

// HandleText classifies text for userID and returns the reply to send.
// Storage failures on the write path are logged and swallowed: the user
// still receives the success acknowledgment.
func (s *LedgerService) HandleText(ctx context.Context, userID, text string) string {
	switch a := classify.Classify(text).(type) {
	case classify.Income:
		s.persist(ctx, core.NewRecord(core.Income, userID, a.Note, a.Amount, s.Now()))
		return fmt.Sprintf("บันทึก รายรับ %s บาท จาก: %s เรียบร้อยแล้ว!", a.Amount, a.Note)

	case classify.Expense:
		s.persist(ctx, core.NewRecord(core.Expense, userID, a.Note, a.Amount, s.Now()))
		return fmt.Sprintf("บันทึก รายจ่าย %s บาท ให้กับ: %s เรียบร้อยแล้ว!", a.Amount, a.Note)

	case classify.SummaryRequest:
		now := s.Now()
		records, err := s.store.ListDay(ctx, userID, core.DateOf(now))
		if err != nil {
			slog.ErrorContext(ctx, "Failed to fetch day records",
				"error", err, "user_id", userID)
			return replySummaryError
		}
		return summary.Render(records, now)

	case classify.Unrecognized:
		return a.Help

	default: // classify.Failure
		return replyProcessingError
	}
}

func (s *LedgerService) persist(ctx context.Context, rec core.Record) {
	if _, err := s.store.Append(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "Failed to save record",
			"error", err,
			"transaction_id", rec.TransactionID,
			"type", string(rec.Type),
			"amount_satang", rec.Amount.Satang)
		return
	}
	s.publishExport(ctx, rec.TransactionID)
}

func (s *LedgerService) publishExport(ctx context.Context, transactionID string) {
	if s.queue == nil {
		return
	}
	// Best effort: the worker's periodic pending scan catches lost messages.
	if err := s.queue.PublishRecordExport(ctx, transactionID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish export message",
			"error", err, "transaction_id", transactionID)
	}
}
