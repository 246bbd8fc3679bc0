package contextutil_test

import (
	"context"
	"testing"

	"go-workforce/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithMemberID(ctx, "m-1")
	ctx = contextutil.WithOrgID(ctx, "o-1")

	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "m-1", contextutil.GetMemberID(ctx))
	assert.Equal(t, "o-1", contextutil.GetOrgID(ctx))
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
