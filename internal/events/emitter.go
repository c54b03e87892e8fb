package events

import (
	"context"
	"sync"
	"time"

	"folio/internal/logger"
	"folio/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Sink persists audit events.
type Sink interface {
	InsertOne(ctx context.Context, evt models.Event) error
	InsertMany(ctx context.Context, evts []models.Event) error
}

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Emitter buffers events and writes them to its sink in batches. A nil
// *Emitter accepts every call and does nothing.
type Emitter struct {
	sink       Sink
	buf        chan models.Event
	cfg        Config
	deployment string

	wg        sync.WaitGroup
	onceClose sync.Once
}

// NewEmitter writes events into the given Mongo collection.
func NewEmitter(coll *mongo.Collection, deployment string) *Emitter {
	return NewEmitterWithConfig(MongoSink{Coll: coll}, deployment, selectConfig(deployment))
}

func NewEmitterWithConfig(sink Sink, deployment string, cfg Config) *Emitter {
	e := &Emitter{
		sink:       sink,
		buf:        make(chan models.Event, cfg.Buffer),
		cfg:        cfg,
		deployment: deployment,
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

func selectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

// Close flushes pending events and stops the worker.
func (e *Emitter) Close() {
	if e == nil {
		return
	}

	e.onceClose.Do(func() {
		close(e.buf)
		e.wg.Wait()
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.Event, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		if err := e.sink.InsertMany(ctx, batch); err != nil {
			logger.Lg.Warn("audit_flush_failed", zap.Int("events", len(batch)), zap.Error(err))
		}

		cancel()

		batch = make([]models.Event, 0, e.cfg.BatchSize)
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case evt, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, evt)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}

// MongoSink stores events in a Mongo collection.
type MongoSink struct {
	Coll *mongo.Collection
}

func (s MongoSink) InsertOne(ctx context.Context, evt models.Event) error {
	_, err := s.Coll.InsertOne(ctx, evt)
	return err
}

func (s MongoSink) InsertMany(ctx context.Context, evts []models.Event) error {
	docs := make([]interface{}, len(evts))
	for i, evt := range evts {
		docs[i] = evt
	}

	_, err := s.Coll.InsertMany(ctx, docs)
	return err
}
