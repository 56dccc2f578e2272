package streams

import (
	"context"

	"access-analytics/internal/events"
)

// AnalysisRequestProducer publishes analysis requests to the partitioned
// in-process queue.
//
// The partition key is the log ID, so every request for the same log is
// routed to the same partition. The consumer runs a single worker goroutine
// per partition, which means rollups of the same log's report are processed
// sequentially while analyses of different logs proceed in parallel.
//
//go:generate mockgen -source=analysis_request_producer.go -destination=./mocks/analysis_request_producer_mock.go -package=mocks
type AnalysisRequestProducer interface {
	Produce(ctx context.Context, event *events.AnalysisRequestedEvent) error
}

type analysisRequestProducer struct {
	queue *PartitionedQueue[events.AnalysisRequestedEvent]
}

func NewAnalysisRequestProducer(queue *PartitionedQueue[events.AnalysisRequestedEvent]) AnalysisRequestProducer {
	return &analysisRequestProducer{
		queue: queue,
	}
}

func (producer *analysisRequestProducer) Produce(ctx context.Context, event *events.AnalysisRequestedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Partition by log ID (single-writer guarantee per log).
	producer.queue.Publish(event.LogID, *event)
	metricAnalysisRequestProducedTotal.WithLabelValues(streamAnalysisRequest).Inc()
	return nil
}
