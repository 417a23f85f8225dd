package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenPipe
}

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plaintext.txt")
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func TestTrimNewline(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"":           "",
		"hello":      "hello",
		"hello\n":    "hello",
		"hello\r\n":  "hello",
		"hello\n\n":  "hello\n",
		"hello \n":   "hello ",
		"hello\r":    "hello\r",
		"\n":         "",
		"two\nlines": "two\nlines",
	}
	for in, want := range testCases {
		require.Equal(t, want, TrimNewline(in), "TrimNewline(%q)", in)
	}
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	line, err := ReadLine(strings.NewReader("sitting\nignored\n"))
	require.NoError(t, err)
	require.Equal(t, "sitting", line)

	line, err = ReadLine(strings.NewReader("no newline"))
	require.NoError(t, err)
	require.Equal(t, "no newline", line)

	line, err = ReadLine(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, "", line)

	_, err = ReadLine(failingReader{})
	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, errBrokenPipe, "the read error should stay in the chain")

	_, err = ReadLine(strings.NewReader("\xff\xfe\n"))
	require.ErrorIs(t, err, ErrIOFailure)
}

func TestReadReference(t *testing.T) {
	t.Parallel()

	text, err := ReadReference(writeTemp(t, []byte("kitten\n")))
	require.NoError(t, err)
	require.Equal(t, "kitten", text)

	text, err = ReadReference(writeTemp(t, []byte("line one\nline two\r\n")))
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", text)

	text, err = ReadReference(writeTemp(t, nil))
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestReadReference_Errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := ReadReference(missing)
	require.ErrorIs(t, err, ErrFileNotFound)
	require.Contains(t, err.Error(), missing)

	_, err = ReadReference(writeTemp(t, []byte{0xff, 0xfe}))
	require.ErrorIs(t, err, ErrIOFailure)

	// A directory opens but cannot be read.
	dir := t.TempDir()
	_, err = ReadReference(dir)
	require.ErrorIs(t, err, ErrIOFailure)
	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr), "the OS error should stay in the chain: %v", err)
	require.Equal(t, dir, pathErr.Path)
}

func TestReadText(t *testing.T) {
	t.Parallel()

	text, err := ReadText(writeTemp(t, []byte("kitten\r\n")))
	require.NoError(t, err)
	require.Equal(t, "kitten\r\n", text)

	_, err = ReadText(writeTemp(t, []byte{'a', 0xff}))
	require.ErrorIs(t, err, ErrIOFailure)

	_, err = ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrFileNotFound)
}
