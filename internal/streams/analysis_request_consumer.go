package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"access-analytics/internal/events"
	"access-analytics/internal/reports"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/shared/svcerrors"
	"access-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=analysis_request_consumer.go -destination=./mocks/analysis_request_consumer_mock.go -package=mocks
type AnalysisRequestConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type analysisRequestConsumer struct {
	queue           *PartitionedQueue[events.AnalysisRequestedEvent]
	analysisService reports.AnalysisService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewAnalysisRequestConsumer(queue *PartitionedQueue[events.AnalysisRequestedEvent], analysisService reports.AnalysisService, logger loggers.Logger) AnalysisRequestConsumer {
	return &analysisRequestConsumer{
		queue:           queue,
		analysisService: analysisService,
		stopCh:          make(chan struct{}),
		logger:          logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for log IDs routed by the producer.
func (consumer *analysisRequestConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *analysisRequestConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *analysisRequestConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.AnalysisRequestedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			// Handle panic recovery to prevent worker goroutine from crashing
			func() {
				defer func() {
					if r := recover(); r != nil {
						loggers.Ctx(ctx).Error().
							Bytes(loggers.FieldErrorStack, debug.Stack()).
							Msg("consumer panic recovered")

						var panicErr error
						if err, ok := r.(error); ok {
							panicErr = err
						} else {
							panicErr = fmt.Errorf("%v", r)
						}

						svcErr := svcerrors.NewInternalErrorPanic(panicErr)
						metricAnalysisRequestConsumedTotal.WithLabelValues(streamAnalysisRequest, svcErr.Code).Inc()
					}
				}()

				ctx = consumer.logger.With().
					Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
					Str(loggers.FieldRequestID, ulid.NewULID()).
					Logger().WithContext(ctx)
				svcError := consumer.analysisService.Analyze(ctx, &event)
				if svcError != nil {
					metricAnalysisRequestConsumedTotal.WithLabelValues(streamAnalysisRequest, svcError.Code).Inc()
				} else {
					metricAnalysisRequestConsumedTotal.WithLabelValues(streamAnalysisRequest, metrics.ValueNoError).Inc()
				}
			}()
		}
	}
}
