package persistence

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Log is the append-only binary log of write requests. Each record is a
// msgpack-encoded request map prefixed with its length, so the file can be
// replayed frame by frame on startup.
type Log struct {
	mu   sync.Mutex
	file *os.File
}

// DefaultPath returns the binlog location under the listd home directory,
// creating the directory if needed.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".listd")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "binlog.dat"), nil
}

// Open opens (or creates) the log file in append mode.
func Open(path string) (*Log, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	return &Log{file: file}, nil
}

// Append writes one request record to the log.
func (l *Log) Append(request map[string]interface{}) error {
	data, err := msgpack.Marshal(request)
	if err != nil {
		return err
	}

	frame := make([]byte, 4+len(data))
	binary.LittleEndian.PutUint32(frame[:4], uint32(len(data)))
	copy(frame[4:], data)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.file.Write(frame)
	return err
}

// Replay reads the log from the start and returns the recorded requests.
// A truncated trailing frame (a crash mid-append) ends the replay at the
// last complete record.
func (l *Log) Replay() ([]map[string]interface{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var requests []map[string]interface{}
	reader := bufio.NewReader(l.file)
	for {
		var length uint32
		if err := binary.Read(reader, binary.LittleEndian, &length); err != nil {
			break
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(reader, data); err != nil {
			break
		}
		var request map[string]interface{}
		if err := msgpack.Unmarshal(data, &request); err != nil {
			break
		}
		requests = append(requests, request)
	}

	// Leave the descriptor positioned for appends again.
	if _, err := l.file.Seek(0, io.SeekEnd); err != nil {
		return nil, err
	}
	return requests, nil
}

// Close closes the log file.
func (l *Log) Close() error {
	return l.file.Close()
}
