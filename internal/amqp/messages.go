package amqp

import (
	"encoding/json"
	"time"
)

// RecordExportMessage asks the worker to push one ledger record to the
// export sheet. It carries only the transaction id; the worker fetches the
// full record from storage.
type RecordExportMessage struct {
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewRecordExportMessage(transactionID string) *RecordExportMessage {
	return &RecordExportMessage{
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (m *RecordExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordExportMessageFromJSON(data []byte) (*RecordExportMessage, error) {
	var msg RecordExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
