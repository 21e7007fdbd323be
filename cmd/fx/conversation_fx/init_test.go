package conversation_fx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"kindred/pkg/utils"
)

type closingClient struct {
	closed int
}

func (c *closingClient) Complete(context.Context, utils.CompletionRequest) (string, error) {
	return "", nil
}

func (c *closingClient) Close() error {
	c.closed++
	return nil
}

type plainClient struct{}

func (plainClient) Complete(context.Context, utils.CompletionRequest) (string, error) {
	return "", nil
}

func TestCloseOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	client := &closingClient{}
	closeOnStop(lc, client, zap.NewNop())
	closeOnStop(lc, plainClient{}, zap.NewNop())

	lc.RequireStart()
	assert.Equal(t, 0, client.closed)
	lc.RequireStop()
	assert.Equal(t, 1, client.closed)
}
