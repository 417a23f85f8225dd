package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrFileNotFound means the reference path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrIOFailure covers unreadable files, undecodable text and failed
	// reads from standard input.
	ErrIOFailure = errors.New("i/o failure")
)

func Read(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadText loads fileName as UTF-8 text, unmodified.
func ReadText(fileName string) (string, error) {
	buf, err := Read(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, fileName)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrIOFailure, fileName)
	}
	return string(buf), nil
}

// ReadReference loads the reference text from fileName. One trailing line
// terminator is removed; everything else is returned as is.
func ReadReference(fileName string) (string, error) {
	text, err := ReadText(fileName)
	if err != nil {
		return "", err
	}
	return TrimNewline(text), nil
}

// ReadLine consumes one line from r. A missing final newline is fine, and
// an empty r yields an empty line.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: reading standard input: %w", ErrIOFailure, err)
	}
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w: standard input is not valid UTF-8", ErrIOFailure)
	}
	return TrimNewline(line), nil
}

// TrimNewline strips a single "\n" or "\r\n" from the end of s.
func TrimNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}
