package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

type Consumer struct {
	consumer *kafka.Consumer
}

func NewConsumer(cfg KafkaConfig) (*Consumer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Consumer...",
		slog.String("broker", cfg.Broker),
		slog.String("group_id", cfg.GroupID),
		slog.String("topic", cfg.Topic))

	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Broker,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
		"isolation.level":    "read_committed",
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create consumer: %w", err)
	}

	if err := c.SubscribeTopics([]string{cfg.Topic}, nil); err != nil {
		c.Close()
		return nil, fmt.Errorf("[KafkaClient] Failed to subscribe to topic: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Consumer initialized successfully")
	return &Consumer{consumer: c}, nil
}

// NextMessage blocks until a message arrives, the context is cancelled,
// or retries are exhausted.
func (c *Consumer) NextMessage(ctx context.Context) (*kafka.Message, error) {
	failures := 0
	for failures < MAX_RETRIES {
		select {
		case <-ctx.Done():
			slog.Warn("[KafkaConsumer] Context cancelled, stopping iterator")
			return nil, ctx.Err()
		default:
			msg, err := c.consumer.ReadMessage(time.Second)
			if err != nil {
				var kafkaErr kafka.Error
				if errors.As(err, &kafkaErr) {
					if kafkaErr.Code() == kafka.ErrTimedOut {
						// Poll timeout, not a failure.
						continue
					}
					if kafkaErr.Code() == kafka.ErrAllBrokersDown {
						slog.Error("[KafkaConsumer] All Kafka brokers are down. Aborting")
						return nil, err
					}
				}

				failures++
				slog.Warn("[KafkaConsumer] Failed to read message, retrying...",
					slog.Int("attempt", failures),
					slog.Int("max_retries", MAX_RETRIES),
					slog.String("error", err.Error()))

				time.Sleep(RETRY_DELAY)
				continue
			}
			return msg, nil
		}
	}
	return nil, errors.New("[KafkaConsumer] Failed to read message after retries")
}

func (c *Consumer) Commit(msg *kafka.Message) error {
	_, err := c.consumer.CommitMessage(msg)
	if err != nil {
		slog.Warn("[KafkaConsumer] Failed to commit offset",
			slog.String("error", err.Error()),
			slog.String("partition", fmt.Sprintf("%d", msg.TopicPartition.Partition)),
			slog.String("offset", fmt.Sprintf("%d", msg.TopicPartition.Offset)))
		return err
	}
	return nil
}

func (c *Consumer) Close() {
	slog.Info("[KafkaClient] Shutting down Kafka consumer...")
	if err := c.consumer.Close(); err != nil {
		slog.Warn("[KafkaClient] Failed to close consumer",
			slog.String("error", err.Error()))
	}
}
