package subscriber

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/config"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/jeffleon2/draftea-settlement-service/internal/policy"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageReader is the part of *kafka.Reader the consumer relies on.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Handler processes one message and decides whether it can be acknowledged.
type Handler func(ctx context.Context, topic string, value []byte) policy.Decision

// KafkaConsumer delivers messages at least once. A message is committed only
// after the handler acknowledges it or after it has been dead-lettered, so a
// crash in between leads to redelivery. Each reader is consumed sequentially.
type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher Publisher
	RetryConfig  config.RetryConfig

	wg sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher Publisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return NewConsumer(readers, publisher, retryConfig)
}

func NewConsumer(readers []MessageReader, publisher Publisher, retryConfig config.RetryConfig) *KafkaConsumer {
	if retryConfig.MaxAttempts <= 0 {
		retryConfig.MaxAttempts = 1
	}
	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per reader and returns immediately. The
// goroutines stop when ctx is cancelled; use Wait to block until they have.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r MessageReader) {
			defer c.wg.Done()
			c.consume(ctx, r, handler)
		}(reader)
	}
}

func (c *KafkaConsumer) Wait() {
	c.wg.Wait()
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *KafkaConsumer) consume(ctx context.Context, r MessageReader, handler Handler) {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			logrus.Errorf("Kafka error: %s", err.Error())
			if !sleep(ctx, c.RetryConfig.BaseDelay) {
				return
			}
			continue
		}

		logrus.WithFields(logrus.Fields{
			"topic":     msg.Topic,
			"partition": msg.Partition,
			"offset":    msg.Offset,
		}).Debugf("📩 Received message value=%s", string(msg.Value))

		if !c.processMessage(ctx, msg, handler) {
			return
		}

		if err := r.CommitMessages(ctx, msg); err != nil {
			logrus.Errorf("Error committing offset %d on %s: %s", msg.Offset, msg.Topic, err.Error())
		}
	}
}

// processMessage runs the handler until it acknowledges the message or the
// retry budget is spent, then dead-letters it. It returns false when ctx was
// cancelled before the message was settled, in which case it must not be
// committed.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) bool {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		if handler(ctx, msg.Topic, msg.Value) == policy.Acknowledge {
			return true
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := c.RetryConfig.Backoff(attempt)
		logrus.Warnf("Retry requested, attempt %d/%d: topic=%s key=%s. Retrying in %v",
			attempt+1, c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key), backoff)
		if !sleep(ctx, backoff) {
			return false
		}
	}

	logrus.Errorf("Message failed after %d attempts: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		err := c.DLQPublisher.Publish(ctx, models.SettlementsDLQTopic, dlqMessage)
		if err != nil {
			logrus.Errorf("Failed to send message to DLQ: %s", err.Error())
		} else {
			logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
		}
	}
	return ctx.Err() == nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
