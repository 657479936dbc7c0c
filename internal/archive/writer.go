// Package archive persists grouped monthly declarations as one zip archive
// per organization.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsn-tools/dsnsplit/internal/models"
	"github.com/dsn-tools/dsnsplit/internal/parser"
)

// Writer persists one organization's monthly declarations.
type Writer interface {
	Write(orgKey string, decls []models.Declaration) (string, error)
}

// ZipWriter implements Writer with one zip file per organization in a local
// output directory.
type ZipWriter struct {
	outDir string
	suffix string
	codec  *parser.Codec
}

// NewZipWriter creates a ZipWriter, creating the output directory and its
// parents if absent.
func NewZipWriter(outDir, suffix string, codec *parser.Codec) (*ZipWriter, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &ZipWriter{outDir: outDir, suffix: suffix, codec: codec}, nil
}

// ArchiveName returns the archive file name for an organization key.
func (w *ZipWriter) ArchiveName(orgKey string) string {
	return orgKey + w.suffix
}

// Write builds the archive fully in memory, then flushes it to disk in a
// single write. Each declaration becomes one entry, re-encoded to the legacy
// code page of the input. Entry metadata carries no timestamps, so identical
// inputs produce byte-identical archives across runs. Duplicate entry names
// are written as-is; extraction resolves them last-wins.
func (w *ZipWriter) Write(orgKey string, decls []models.Declaration) (string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, d := range decls {
		raw, err := w.codec.Encode(d.Content)
		if err != nil {
			return "", fmt.Errorf("encoding entry %s: %w", d.EntryName(), err)
		}

		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:   d.EntryName(),
			Method: zip.Deflate,
		})
		if err != nil {
			return "", fmt.Errorf("creating entry %s: %w", d.EntryName(), err)
		}
		if _, err := f.Write(raw); err != nil {
			return "", fmt.Errorf("writing entry %s: %w", d.EntryName(), err)
		}
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive for %s: %w", orgKey, err)
	}

	name := w.ArchiveName(orgKey)
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing archive %s: %w", name, err)
	}

	return path, nil
}
