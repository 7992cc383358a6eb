// Package archive содержит упаковку записей экспорта в ZIP.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
)

// Сообщения об ошибках архиватора.
const (
	errMsgCreateEntry  = "failed to create zip entry"
	errMsgWriteEntry   = "failed to write zip entry"
	errMsgCloseArchive = "failed to finalize zip archive"
)

// ZipArchiver пакует записи экспорта в ZIP-архив в памяти.
type ZipArchiver struct{}

// NewZipArchiver создает новый экземпляр ZipArchiver.
func NewZipArchiver() *ZipArchiver {
	return &ZipArchiver{}
}

// Archive собирает ZIP из записей. Записи с Path, оканчивающимся на "/",
// становятся каталогами.
func (a *ZipArchiver) Archive(entries []app.ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, entry := range entries {
		header, err := writer.Create(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", errMsgCreateEntry, entry.Path, err)
		}
		if len(entry.Content) == 0 {
			continue
		}
		if _, err := header.Write(entry.Content); err != nil {
			return nil, fmt.Errorf("%s %q: %w", errMsgWriteEntry, entry.Path, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsgCloseArchive, err)
	}

	return buf.Bytes(), nil
}
