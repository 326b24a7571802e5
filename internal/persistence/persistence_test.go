package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binlog.dat")
	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	requests := []map[string]interface{}{
		{"command": "LPUSH", "key": "jobs", "value": "a"},
		{"command": "RPUSH", "key": "jobs", "value": "b"},
		{"command": "LPOP", "key": "jobs"},
	}
	for _, req := range requests {
		require.NoError(t, log.Append(req))
	}

	replayed, err := log.Replay()
	require.NoError(t, err)
	require.Len(t, replayed, 3)
	for i, req := range requests {
		assert.Equal(t, req["command"], replayed[i]["command"])
		assert.Equal(t, req["key"], replayed[i]["key"])
		assert.Equal(t, req["value"], replayed[i]["value"])
	}
}

func TestReplayEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binlog.dat")
	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	replayed, err := log.Replay()
	require.NoError(t, err)
	assert.Empty(t, replayed)
}

func TestReplayStopsAtTruncatedFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binlog.dat")
	log, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(map[string]interface{}{"command": "PING"}))
	require.NoError(t, log.Close())

	// Fake a crash mid-append: a length prefix with no payload behind it.
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = file.Write([]byte{0xFF, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	require.NoError(t, file.Close())

	log, err = Open(path)
	require.NoError(t, err)
	defer log.Close()

	replayed, err := log.Replay()
	require.NoError(t, err)
	require.Len(t, replayed, 1)
	assert.Equal(t, "PING", replayed[0]["command"])

	// Appending after a replay lands at the end of the file.
	require.NoError(t, log.Append(map[string]interface{}{"command": "ECHO"}))
}
