package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTrip(t *testing.T) {
	request := map[string]interface{}{"command": "LPUSH", "key": "jobs", "value": "a"}

	data, err := EncodeRequest(request)
	require.NoError(t, err)

	decoded, err := DecodeRequest(data)
	require.NoError(t, err)
	assert.Equal(t, "LPUSH", decoded["command"])
	assert.Equal(t, "jobs", decoded["key"])
	assert.Equal(t, "a", decoded["value"])
}

func TestRequestsNeedCommandField(t *testing.T) {
	_, err := EncodeRequest(map[string]interface{}{"key": "jobs"})
	assert.Error(t, err)

	data, err := EncodeResponse(map[string]interface{}{"status": "OK"})
	require.NoError(t, err)
	_, err = DecodeRequest(data)
	assert.Error(t, err)
}

func TestDecodeRequestGarbage(t *testing.T) {
	_, err := DecodeRequest([]byte{0xc1, 0xff, 0x00})
	assert.Error(t, err)
}

func TestResponseRoundTrip(t *testing.T) {
	response := map[string]interface{}{"status": "OK", "message": "PONG"}

	data, err := EncodeResponse(response)
	require.NoError(t, err)

	decoded, err := DecodeResponse(data)
	require.NoError(t, err)
	assert.Equal(t, "OK", decoded["status"])
	assert.Equal(t, "PONG", decoded["message"])
}
