package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  RecordType = "income"
	Expense RecordType = "expense"
)

// Bangkok is the fixed UTC+7 offset used for all calendar derivations.
// Thailand has no daylight saving, so a fixed zone is sufficient.
var Bangkok = time.FixedZone("UTC+7", 7*60*60)

type (
	RecordType string

	Money struct {
		Satang int64
	}

	// Record is one immutable income or expense entry. Date and Time are
	// derived from CreatedAt in the Bangkok offset at creation and stored
	// alongside it so day queries never re-derive them.
	Record struct {
		UserID        string
		TransactionID string
		Type          RecordType
		Amount        Money
		Note          string
		CreatedAt     int64  // Unix seconds
		Date          string // YYYY-MM-DD in UTC+7
		Time          string // HH:MM in UTC+7
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid record type")
	ErrEmptyNote     = errors.New("empty note")
	ErrEmptyUserID   = errors.New("empty user id")
)

// NewRecord builds a Record for the given moment. The transaction id is
// derived from type, user and Unix timestamp, so two records of the same
// type for the same user within the same second collide; the store rejects
// the duplicate and the failure is logged, not surfaced.
func NewRecord(t RecordType, userID, note string, amount Money, at time.Time) Record {
	local := at.In(Bangkok)
	return Record{
		UserID:        userID,
		TransactionID: fmt.Sprintf("%s-%s-%d", t, userID, at.Unix()),
		Type:          t,
		Amount:        amount,
		Note:          note,
		CreatedAt:     at.Unix(),
		Date:          local.Format("2006-01-02"),
		Time:          local.Format("15:04"),
	}
}

// DateOf returns the YYYY-MM-DD calendar date of t in the Bangkok offset.
func DateOf(t time.Time) string {
	return t.In(Bangkok).Format("2006-01-02")
}

func (t RecordType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (m Money) Validate() error {
	if m.Satang < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r Record) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.UserID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(r.Note) == "" {
		return ErrEmptyNote
	}
	if len(r.Note) > 500 {
		return errors.New("note too long (max 500 characters)")
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if r.TransactionID == "" {
		return errors.New("missing transaction id")
	}
	return nil
}
