package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("Conversation", nil)

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "FORBIDDEN"))
	assert.False(t, Is(nil, "NOT_FOUND"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}

func TestIsUnwrapsWrappedErrors(t *testing.T) {
	inner := BadRequest("bad amount", nil)
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.True(t, Is(wrapped, "BAD_REQUEST"))
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("X", nil).Status)
	assert.Equal(t, http.StatusConflict, Conflict("dup").Status)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("slow down").Status)
}
