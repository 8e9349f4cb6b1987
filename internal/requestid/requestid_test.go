package requestid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Empty(t, FromContext(context.Background()))

	ctx := NewContext(context.Background(), "rid")
	assert.Equal(t, "rid", FromContext(ctx))

	child, cancel := context.WithCancel(ctx)
	defer cancel()
	assert.Equal(t, "rid", FromContext(child))
}
