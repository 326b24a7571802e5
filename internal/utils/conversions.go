package utils

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeRequest serializes a request map into a byte slice
func EncodeRequest(request map[string]interface{}) ([]byte, error) {
	if _, ok := request["command"].(string); !ok {
		return nil, errors.New("request has no 'command' field")
	}
	return msgpack.Marshal(request)
}

// DecodeRequest deserializes a byte slice into a request map
func DecodeRequest(data []byte) (map[string]interface{}, error) {
	var request map[string]interface{}
	if err := msgpack.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	if _, ok := request["command"].(string); !ok {
		return nil, errors.New("request has no 'command' field")
	}
	return request, nil
}

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// DecodeResponse deserializes a byte slice into a response map
func DecodeResponse(data []byte) (map[string]interface{}, error) {
	var response map[string]interface{}
	err := msgpack.Unmarshal(data, &response)
	return response, err
}
