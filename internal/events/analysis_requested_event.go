package events

import "time"

// AnalysisRequestedEvent asks the background analysis worker to compute the
// report for one uploaded log. It is published after the raw log has been
// durably stored, so the consumer can always load the content by LogID.
//
// The log ID doubles as the partition key: all events for the same log land
// on the same queue partition, and the single worker per partition
// serializes re-analysis of a log against itself.
type AnalysisRequestedEvent struct {
	LogID       string    `json:"logId"`
	RequestedAt time.Time `json:"requestedAt"`
}
