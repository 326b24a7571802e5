package core

import (
	"errors"
	"strings"

	"github.com/vskvj3/listd/internal/persistence"
	"github.com/vskvj3/listd/internal/utils"
)

type CommandHandler struct {
	Database *Database
	Disk     *persistence.Log
}

// Create a new CommandHandler instance. disk may be nil when persistence is
// turned off.
func NewCommandHandler(db *Database, disk *persistence.Log) *CommandHandler {
	return &CommandHandler{Database: db, Disk: disk}
}

// Write commands are appended to the binlog before they are applied.
func isWriteCommand(command string) bool {
	writeCommands := map[string]bool{
		"LPUSH":  true,
		"RPUSH":  true,
		"LPOP":   true,
		"RPOP":   true,
		"LCLEAR": true,
		"LDRAIN": true,
		"SPUSH":  true,
		"SPOP":   true,
		"WADD":   true,
	}
	return writeCommands[command]
}

// HandleCommand processes a client request and returns the response map.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	return h.handle(request, true)
}

// Rebuild replays the binlog, re-applying every recorded write command.
func (h *CommandHandler) Rebuild() error {
	if h.Disk == nil {
		return errors.New("persistence is not enabled")
	}
	logger := utils.GetLogger()

	requests, err := h.Disk.Replay()
	if err != nil {
		return err
	}
	for _, request := range requests {
		command, ok := request["command"].(string)
		if !ok || !isWriteCommand(strings.ToUpper(command)) {
			continue
		}
		if _, err := h.handle(request, false); err != nil {
			logger.Warn("Skipping unreplayable binlog record: " + err.Error())
		}
	}
	return nil
}

func (h *CommandHandler) handle(request map[string]interface{}, record bool) (map[string]interface{}, error) {
	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)

	if record && h.Disk != nil && isWriteCommand(command) {
		if err := h.Disk.Append(request); err != nil {
			return nil, errors.New("request logging to disk failed: " + err.Error())
		}
	}

	switch command {
	case "PING":
		return map[string]interface{}{"status": "OK", "message": "PONG"}, nil

	case "ECHO":
		message, ok := request["message"].(string)
		if !ok {
			return nil, errors.New("ECHO requires a 'message' field")
		}
		return map[string]interface{}{"status": "OK", "message": message}, nil

	case "LPUSH", "RPUSH":
		key, keyOk := request["key"].(string)
		value, valueOk := request["value"].(string)
		if !keyOk || !valueOk {
			return nil, errors.New(command + " requires 'key', 'value' fields")
		}

		var err error
		if command == "LPUSH" {
			err = h.Database.LPush(key, value)
		} else {
			err = h.Database.RPush(key, value)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK"}, nil

	case "LPOP", "RPOP":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New(command + " requires a 'key' field")
		}

		var value string
		var found bool
		var err error
		if command == "LPOP" {
			value, found, err = h.Database.LPop(key)
		} else {
			value, found, err = h.Database.RPop(key)
		}
		if err != nil {
			return nil, err
		}
		if !found {
			return map[string]interface{}{"status": "NOT_FOUND"}, nil
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "LLEN":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New("LLEN requires a 'key' field")
		}
		length, err := h.Database.LLen(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "length": length}, nil

	case "LCLEAR":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New("LCLEAR requires a 'key' field")
		}
		removed, err := h.Database.LClear(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "removed": removed}, nil

	case "LDRAIN":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New("LDRAIN requires a 'key' field")
		}
		reverse, _ := request["reverse"].(bool)
		values, err := h.Database.LDrain(key, reverse)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "values": values}, nil

	case "SPUSH":
		key, keyOk := request["key"].(string)
		value, valueOk := request["value"].(string)
		if !keyOk || !valueOk {
			return nil, errors.New("SPUSH requires 'key', 'value' fields")
		}
		if err := h.Database.SPush(key, value); err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK"}, nil

	case "SPOP":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New("SPOP requires a 'key' field")
		}
		value, found, err := h.Database.SPop(key)
		if err != nil {
			return nil, err
		}
		if !found {
			return map[string]interface{}{"status": "NOT_FOUND"}, nil
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "SLEN":
		key, ok := request["key"].(string)
		if !ok {
			return nil, errors.New("SLEN requires a 'key' field")
		}
		length, err := h.Database.SLen(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "length": length}, nil

	case "WADD":
		word, ok := request["word"].(string)
		if !ok {
			return nil, errors.New("WADD requires a 'word' field")
		}
		if err := h.Database.WordAdd(word); err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK"}, nil

	case "WHAS":
		word, ok := request["word"].(string)
		if !ok {
			return nil, errors.New("WHAS requires a 'word' field")
		}
		return map[string]interface{}{"status": "OK", "found": h.Database.WordExists(word)}, nil

	case "WCOUNT":
		return map[string]interface{}{"status": "OK", "count": h.Database.WordCount()}, nil

	default:
		return nil, errors.New("unknown command: " + command)
	}
}
