package gclipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ReadAll returns the clipboard text with surrounding whitespace removed.
func ReadAll() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
