package consumers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"driver-tips/internal/shared/configs"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/shared/ulid"

	"github.com/segmentio/kafka-go"
)

// KafkaConsumer reads tip events from the inbound topic in bounded batches
// and drives them through the BatchConsumer.
//
// Kafka commits offsets, not individual items, so partial batch failure is
// handled by re-publishing the failed items to a retry topic before the
// fetched offsets are committed. If the re-publish itself fails nothing is
// committed and the whole batch is redelivered; at-least-once semantics hold
// either way.
//
//go:generate mockgen -source=kafka_consumer.go -destination=./mocks/kafka_consumer_mock.go -package=mocks
type KafkaConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type kafkaConsumer struct {
	reader        *kafka.Reader
	writer        *kafka.Writer
	batchConsumer BatchConsumer
	batchSize     int
	batchWait     time.Duration

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewKafkaConsumer(cfg configs.KafkaConfig, batchConsumer BatchConsumer, logger loggers.Logger) KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.RetryTopic,
		Balancer: &kafka.Hash{},
	}

	return &kafkaConsumer{
		reader:        reader,
		writer:        writer,
		batchConsumer: batchConsumer,
		batchSize:     cfg.BatchSize,
		batchWait:     time.Duration(cfg.BatchWait) * time.Second,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns the consume loop goroutine.
func (c *kafkaConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

// Stop closes the reader and waits for the consume loop to drain
// (best called during app shutdown, after cancelling the context).
func (c *kafkaConsumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
	_ = c.reader.Close()
	_ = c.writer.Close()
}

func (c *kafkaConsumer) run(ctx context.Context) {
	c.logger.Info().
		Str(loggers.FieldTopic, c.reader.Config().Topic).
		Msg("kafka consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		default:
		}

		messages, err := c.fetchBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn().Err(err).Msg("failed to fetch messages, backing off")
			time.Sleep(time.Second)
			continue
		}
		if len(messages) == 0 {
			continue
		}

		batchCtx := c.logger.With().
			Str(loggers.FieldRequestID, ulid.NewULID()).
			Logger().WithContext(ctx)
		c.handleBatch(batchCtx, messages)
	}
}

// fetchBatch blocks for the first message, then keeps filling the batch until
// it is full or batchWait elapses.
func (c *kafkaConsumer) fetchBatch(ctx context.Context) ([]kafka.Message, error) {
	first, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	messages := []kafka.Message{first}

	fillCtx, cancel := context.WithTimeout(ctx, c.batchWait)
	defer cancel()
	for len(messages) < c.batchSize {
		message, err := c.reader.FetchMessage(fillCtx)
		if err != nil {
			break
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (c *kafkaConsumer) handleBatch(ctx context.Context, messages []kafka.Message) {
	logger := loggers.Ctx(ctx)

	records := make([]Record, len(messages))
	byID := make(map[string]kafka.Message, len(messages))
	for i, message := range messages {
		id := messageID(message)
		records[i] = Record{ID: id, Body: message.Value}
		byID[id] = message
	}

	failures := c.batchConsumer.ProcessBatch(ctx, records)

	if len(failures) > 0 {
		retry := make([]kafka.Message, 0, len(failures))
		for _, failure := range failures {
			original := byID[failure.ItemIdentifier]
			retry = append(retry, kafka.Message{Key: original.Key, Value: original.Value})
		}
		if err := c.writer.WriteMessages(ctx, retry...); err != nil {
			// Leave the offsets uncommitted; the whole batch is redelivered.
			logger.Error().Err(err).Msg("failed to re-publish failed items, batch left uncommitted")
			return
		}
		metricBatchRedeliveredTotal.WithLabelValues(c.writer.Topic).Add(float64(len(retry)))
		logger.Info().Msgf("re-published %d of %d items for redelivery", len(retry), len(messages))
	}

	if err := c.reader.CommitMessages(ctx, messages...); err != nil {
		logger.Error().Err(err).Msg("failed to commit offsets")
	}
}

func messageID(m kafka.Message) string {
	return fmt.Sprintf("%s-%d-%d", m.Topic, m.Partition, m.Offset)
}
