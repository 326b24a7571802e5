package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "PING", "WCOUNT":
		// No additional arguments
		if len(parts) > 1 {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}

	case "ECHO":
		if len(parts) < 2 {
			return nil, fmt.Errorf("ECHO requires a message")
		}
		request["message"] = strings.Join(parts[1:], " ")

	case "LPUSH", "RPUSH", "SPUSH":
		if len(parts) < 3 {
			return nil, fmt.Errorf("%s requires a key and value", command)
		}
		request["key"] = parts[1]
		request["value"] = parts[2]

	case "LPOP", "RPOP", "LLEN", "LCLEAR", "SPOP", "SLEN":
		if len(parts) < 2 {
			return nil, fmt.Errorf("%s requires a key", command)
		}
		request["key"] = parts[1]

	case "LDRAIN":
		if len(parts) < 2 {
			return nil, fmt.Errorf("LDRAIN requires a key")
		}
		request["key"] = parts[1]
		if len(parts) > 2 && strings.EqualFold(parts[2], "reverse") {
			request["reverse"] = true
		}

	case "WADD", "WHAS":
		if len(parts) < 2 {
			return nil, fmt.Errorf("%s requires a word", command)
		}
		request["word"] = parts[1]

	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

func main() {
	addr := flag.String("addr", "localhost:6380", "Server address")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer conn.Close()

	fmt.Println("Connected to server. Type commands (e.g., PING, LPUSH key value, LPOP key) and press Enter.")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(">> ")
		// Read user input
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}
		input = strings.TrimSpace(input)

		// Parse and validate the input
		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		// Serialize the request using MessagePack
		data, err := msgpack.Marshal(request)
		if err != nil {
			fmt.Println("Error serializing request:", err)
			continue
		}

		// Send the serialized request to the server
		_, err = conn.Write(data)
		if err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}

		// Read the server's response
		response := make([]byte, 4096)
		n, err := conn.Read(response)
		if err != nil {
			fmt.Println("Error reading from server:", err)
			return
		}

		// Deserialize the server's response
		var serverResponse map[string]interface{}
		err = msgpack.Unmarshal(response[:n], &serverResponse)
		if err != nil {
			fmt.Println("Error deserializing response:", err)
			continue
		}

		// Print the server's response
		switch status, _ := serverResponse["status"].(string); status {
		case "OK":
			printed := false
			for _, field := range []string{"message", "value", "values", "length", "removed", "found", "count"} {
				if v, ok := serverResponse[field]; ok {
					fmt.Println("Server:", v)
					printed = true
					break
				}
			}
			if !printed {
				fmt.Println("Server: OK")
			}
		case "NOT_FOUND":
			fmt.Println("Server: (nothing there)")
		case "ERROR":
			fmt.Println("Server Error:", serverResponse["message"])
		default:
			fmt.Println("Unexpected server response:", serverResponse)
		}
	}
}
