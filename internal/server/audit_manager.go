package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditProducer is the sink the audit pipeline publishes to. In
// production it is a Kafka writer on the audit_logs topic.
type AuditProducer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

const auditTopic = "audit_logs"

// AuditManager decouples request handling from audit publishing: entries
// flow through an aggregator that forms batches (by size or timeout) and
// a pool of workers that push them to the producer.
type AuditManager struct {
	producer    AuditProducer
	workerCount int
	batchSize   int
	timeout     time.Duration

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewAuditManager(producer AuditProducer, workerCount, batchSize int, timeout time.Duration) *AuditManager {
	return &AuditManager{
		producer:    producer,
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(i)
	}
}

// LogEntry enqueues an entry without blocking the request path. When the
// pipeline is saturated or shutting down the entry is dumped to the log
// instead of being dropped silently.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencyLog(entry)
	default:
		m.emergencyLog(entry)
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			zap.L().Info("AuditManager shutdown completed")
		case <-ctx.Done():
			zap.L().Warn("AuditManager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			zap.L().Error("Failed to close audit producer", zap.Error(err))
		}
	})
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	select {
	case m.batchChan <- batch:
	default:
		// Workers are behind; publish inline rather than block the
		// aggregator.
		m.publishBatch(batch)
	}
}

func (m *AuditManager) runWorker(id int) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		m.publishBatch(batch)
		_ = id
	}
}

func (m *AuditManager) publishBatch(batch []AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			zap.L().Error("Failed to marshal audit entry", zap.Error(err))
			continue
		}
		key := []byte(entry.Method + " " + entry.Path)
		if err := m.producer.SendMessage(ctx, auditTopic, key, value); err != nil {
			zap.L().Error("Failed to publish audit entry", zap.Error(err))
		}
	}
}

func (m *AuditManager) emergencyLog(entry AuditLogEntry) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		zap.L().Error("Failed to marshal emergency audit entry", zap.Error(err))
		return
	}
	fmt.Printf("\n=== EMERGENCY AUDIT ===\n%s\n=== END ===\n", entryJSON)
}
