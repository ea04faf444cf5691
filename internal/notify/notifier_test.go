package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/orderdesk/internal/types"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotifier(t *testing.T) {
	w := &recordingWriter{}
	n := &KafkaNotifier{writer: w}

	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	change := StatusChange{OrderID: "O1", Owner: 12, From: types.PendingStatus, To: types.PreparingStatus, Actor: types.AdminActor, At: at}

	require.NoError(t, n.NotifyStatusChange(context.Background(), change))
	require.Len(t, w.messages, 1)
	assert.Equal(t, "12", string(w.messages[0].Key))
	assert.Equal(t, at, w.messages[0].Time)

	var got StatusChange
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
	assert.Equal(t, change, got)

	assert.NoError(t, n.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifierWriteError(t *testing.T) {
	n := &KafkaNotifier{writer: &recordingWriter{err: errors.New("broker down")}}

	err := n.NotifyStatusChange(context.Background(), StatusChange{OrderID: "O1"})
	assert.EqualError(t, err, "failed to publish status change broker down")
}

func TestNewPicksNotifier(t *testing.T) {
	assert.IsType(t, LogNotifier{}, New(nil, "order-status"))
	assert.IsType(t, &KafkaNotifier{}, New([]string{"localhost:9092"}, "order-status"))
}

func TestKafkaNotifierDoesNotWaitForBatches(t *testing.T) {
	n := NewKafkaNotifier([]string{"localhost:9092"}, "order-status")
	w, ok := n.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, w.BatchSize)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, "order-status", w.Topic)
}
