package document

import (
	"context"
	"fmt"
	"os"

	"cryptostatus/internal/application"
)

var _ application.DocumentWriter = (*FileWriter)(nil)

// FileWriter truncates and rewrites a single file in place. Readers may observe a partial write.
type FileWriter struct {
	Path string
	Perm os.FileMode
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: path, Perm: 0o644}
}

func (w *FileWriter) Write(_ context.Context, content string) error {
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(w.Path, []byte(content), perm); err != nil {
		return fmt.Errorf("write %s: %w", w.Path, err)
	}
	return nil
}
