package models

// RawLogfile is an uploaded access log as received, before any analysis.
// Content is the raw log text; LogID doubles as the idempotency key of the
// upload that produced it.
type RawLogfile struct {
	LogID   string    `json:"logId"`
	Name    string    `json:"name"`
	Format  LogFormat `json:"format"`
	Content []byte    `json:"content"`
}
