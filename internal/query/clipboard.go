package query

import "github.com/atotto/clipboard"

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}
