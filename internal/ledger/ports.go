package ledger

import (
	"context"

	"poongtao/internal/core"
)

// Ports for outbound adapters.
type (
	// RecordWriter persists one record. The returned ref identifies the
	// written row in the backend's own terms (transaction id, range ref).
	RecordWriter interface {
		Append(ctx context.Context, r core.Record) (ref string, err error)
	}

	// DayReader returns every record a user created on the given
	// YYYY-MM-DD date (UTC+7 calendar).
	DayReader interface {
		ListDay(ctx context.Context, userID, date string) ([]core.Record, error)
	}

	// Store is what the webhook service needs from a backend.
	Store interface {
		RecordWriter
		DayReader
	}
)
