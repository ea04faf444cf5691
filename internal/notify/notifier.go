package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/orderdesk/internal/types"
)

// StatusChange tells an order's owner their order moved.
type StatusChange struct {
	OrderID string       `json:"order_id"`
	Owner   int          `json:"owner"`
	From    types.Status `json:"from"`
	To      types.Status `json:"to"`
	Actor   types.Actor  `json:"actor"`
	At      time.Time    `json:"at"`
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, change StatusChange) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier writes synchronously, one message per status change, so
// batching is kept minimal.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchSize:              1,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// NotifyStatusChange keys messages by owner so one user's updates stay ordered.
func (n *KafkaNotifier) NotifyStatusChange(ctx context.Context, change StatusChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal status change %w", err)
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(change.Owner)),
		Value: body,
		Time:  change.At,
	})
	if err != nil {
		return fmt.Errorf("failed to publish status change %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// LogNotifier is used when no brokers are configured.
type LogNotifier struct{}

func (LogNotifier) NotifyStatusChange(_ context.Context, change StatusChange) error {
	logger.Infof("Order %s of user %d moved %s -> %s by %s", change.OrderID, change.Owner, change.From, change.To, change.Actor)
	return nil
}

func (LogNotifier) Close() error {
	return nil
}

// New picks the Kafka notifier when brokers are configured.
func New(brokers []string, topic string) Notifier {
	if len(brokers) == 0 {
		return LogNotifier{}
	}
	return NewKafkaNotifier(brokers, topic)
}
