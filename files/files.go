package files

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Read loads a document as a single string for the editor. The editor does
// not care where content comes from; this is the host-side loader.
func Read(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var dest strings.Builder
	src := bufio.NewReader(file)
	if _, err := io.Copy(&dest, src); err != nil {
		return "", err
	}
	return dest.String(), nil
}

// Write persists document content, truncating any previous file.
func Write(path string, content io.Reader) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return err
	}
	return nil
}
