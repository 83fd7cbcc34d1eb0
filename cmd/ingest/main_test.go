package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024", "marzo"), 0o700))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.txt"), 0o700))
	for name, body := range map[string]string{
		"b.txt":                 "second",
		"a.PDF":                 "%PDF-1.4",
		"notes.md":              "ignored",
		"image.png":             "ignored",
		"2024/juan.txt":         "nested",
		"2024/marzo/ana.pdf":    "%PDF-1.7",
		"2024/marzo/readme.md":  "ignored",
		"folder.txt/inside.txt": "inside",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(body), 0o600))
	}

	docs, err := readDocuments(dir)
	require.NoError(t, err)

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.DisplayName
	}
	assert.Equal(t, []string{"2024/juan.txt", "2024/marzo/ana.pdf", "a.PDF", "b.txt", "folder.txt/inside.txt"}, names)
	assert.Equal(t, []byte("nested"), docs[0].Content)
	assert.Equal(t, []byte("second"), docs[3].Content)
}

func TestReadDocuments_MissingDir(t *testing.T) {
	_, err := readDocuments(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"PAGO", "INTERES"}, splitTerms(" PAGO, ,INTERES "))
	assert.Equal(t, []string{}, splitTerms(""))
}
