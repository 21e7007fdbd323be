package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProducer_NoBrokerSkipsPublish(t *testing.T) {
	p := NewProducer("", "emotion-alerts", "", "", zap.NewNop())

	assert.NoError(t, p.PublishMessage(context.Background(), []byte("k"), []byte("v")))
	assert.NoError(t, p.PublishMessages(context.Background(), Message{Key: []byte("a")}, Message{Key: []byte("b")}))
	assert.NoError(t, p.Close())
}

func TestProducer_NilIsSafe(t *testing.T) {
	var p *Producer
	assert.NoError(t, p.PublishMessage(context.Background(), nil, nil))
}

func TestProducer_CredentialsEnableSASL(t *testing.T) {
	p := NewProducer("localhost:9092", "emotion-alerts", "svc", "pw", zap.NewNop())
	require.NotNil(t, p.writer)
	assert.NotNil(t, p.writer.Transport)

	assert.Equal(t, 10*time.Millisecond, p.writer.BatchTimeout)

	plain := NewProducer("localhost:9092", "emotion-alerts", "", "", zap.NewNop())
	assert.Nil(t, plain.writer.Transport)
}

func TestProducer_EmptyBatchIsNoop(t *testing.T) {
	p := NewProducer("localhost:9092", "emotion-alerts", "", "", zap.NewNop())
	assert.NoError(t, p.PublishMessages(context.Background()))
}
