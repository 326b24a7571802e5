package utils

import (
	"bufio"
	"os"
	"strings"
)

// ReadTokens reads a text file and splits every line on whitespace,
// returning the tokens in file order.
func ReadTokens(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tokens []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens = append(tokens, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
