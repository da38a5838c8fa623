package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	frame := Encode(EventMessageSent, MessageSentData{TempID: "t-1", Delivered: true})

	var event Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, EventMessageSent, event.Type)
	assert.NotEmpty(t, event.Timestamp)

	var data MessageSentData
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, "t-1", data.TempID)
	assert.True(t, data.Delivered)
}

func TestEncodeNilData(t *testing.T) {
	frame := Encode(EventPong, nil)

	var event Event
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, EventPong, event.Type)
}
