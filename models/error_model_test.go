package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := NewKindedError(KindNotFound, "NOT_FOUND", "milestone not found")
	wrapped := fmt.Errorf("release: %w", notFound)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, notFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
	assert.Equal(t, "not_found", KindOf(wrapped).String())
	assert.Equal(t, "NOT_FOUND", CodeOf(wrapped))
	assert.Equal(t, "INTERNAL", CodeOf(errors.New("boom")))
}
