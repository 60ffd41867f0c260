package domain

import "time"

// Record is the audit snapshot of one completed execution, as persisted by a
// ports.RecordStore. It is write-once: records are never resumed or replayed
// into a running pipeline.
type Record struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Emotion    string       `json:"emotion"`
	RetryCount int          `json:"retry_count"`
	Trace      []TraceEntry `json:"trace"`
	CreatedAt  time.Time    `json:"created_at"`
}
