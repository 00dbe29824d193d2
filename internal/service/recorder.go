package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
	"go.uber.org/zap"
)

const recorderInsertTimeout = 10 * time.Second

type operationRecord struct {
	table  string
	fields []domain.OperationField
}

// Recorder persists operation records off the request path. Handlers compute
// their response first and hand the record to Record, which never blocks and
// never fails the caller: persistence is telemetry, not the source of truth
// for the response. A slow or broken database only costs records, not
// responses.
type Recorder struct {
	store  domain.OperationLogStore
	logger *zap.Logger

	ch      chan operationRecord
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewRecorder creates a recorder with the given queue capacity. A nil store
// disables persistence entirely; records are dropped at debug level so the
// process keeps serving without a database.
func NewRecorder(store domain.OperationLogStore, buffer int, logger *zap.Logger) *Recorder {
	if buffer <= 0 {
		buffer = 1024
	}
	return &Recorder{
		store:  store,
		logger: logger,
		ch:     make(chan operationRecord, buffer),
	}
}

// Start launches the single worker goroutine draining the queue.
func (r *Recorder) Start() {
	r.wg.Add(1)
	go r.worker()
}

// Stop closes the queue and waits for the worker to drain everything already
// buffered. Records offered after Stop are dropped.
func (r *Recorder) Stop() {
	if r.stopped.Swap(true) {
		return
	}
	close(r.ch)
	r.wg.Wait()
}

// Record enqueues one operation record, fire-and-forget. When the queue is
// full the record is dropped with a warning rather than blocking the caller.
func (r *Recorder) Record(table string, fields []domain.OperationField) {
	if r.store == nil {
		r.logger.Debug("persistence disabled, record dropped", zap.String("table", table))
		return
	}
	if r.stopped.Load() {
		r.logger.Warn("recorder stopped, record dropped", zap.String("table", table))
		return
	}

	select {
	case r.ch <- operationRecord{table: table, fields: fields}:
	default:
		r.logger.Warn("recorder queue full, record dropped", zap.String("table", table))
	}
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for rec := range r.ch {
		if r.store == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), recorderInsertTimeout)
		err := r.store.Insert(ctx, rec.table, rec.fields)
		cancel()
		if err != nil {
			// Logging failures never propagate; the response was
			// already sent by the time this runs.
			r.logger.Warn("operation record not persisted",
				zap.String("table", rec.table),
				zap.Error(err))
		}
	}
}
