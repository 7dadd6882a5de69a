package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := NewServiceError("submit_answer", "failed to record completion", cause)
		assert.Equal(t, "submit_answer operation failed: failed to record completion: connection reset", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()
		err := NewServiceError("get_progress", "no store", nil)
		assert.Equal(t, "get_progress operation failed: no store", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("errors.As", func(t *testing.T) {
		t.Parallel()
		var target *ServiceError
		wrapped := errors.Join(errors.New("outer"), NewServiceError("register", "boom", cause))
		assert.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "register", target.Operation)
	})
}
