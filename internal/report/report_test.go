package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var sample = Result{
	Path:      "plaintext.txt",
	Reference: "kitten",
	Guess:     "sitting",
	Distance:  3,
	Score:     50,
}

func TestWrite(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, Write(out, sample))
	require.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")), "output should be a PDF")
	require.Contains(t, out.String(), "%%EOF")
}

func TestWrite_LongAndUnicodeText(t *testing.T) {
	t.Parallel()

	r := sample
	r.Reference = strings.Repeat("the quick brown fox jumps over the lazy dog ", 400)
	r.Guess = "日本語 café"

	out := &bytes.Buffer{}
	require.NoError(t, Write(out, r))
	require.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, WritePDF(fileName, sample))

	buf, err := os.ReadFile(fileName)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(buf, []byte("%PDF-")))
}

func TestWritePDF_BadPath(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "missing-dir", "report.pdf")
	require.Error(t, WritePDF(fileName, sample))
}
