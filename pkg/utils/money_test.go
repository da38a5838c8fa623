package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(1000), ToCents(10))
	assert.Equal(t, int64(1), ToCents(0.01))
	assert.Equal(t, int64(30), ToCents(0.1)+ToCents(0.2), "no float residue in cents")
	assert.Equal(t, 6.0, FromCents(ToCents(10)-ToCents(4)))
}
