package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// TextFileWriter сохраняет отчеты в текстовые файлы
type TextFileWriter struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewTextFileWriter создает новый TextFileWriter
func NewTextFileWriter() *TextFileWriter {
	return &TextFileWriter{
		dirPerm:  0755,
		filePerm: 0644,
	}
}

// Prepare создает родительские директории для пути отчета
func (w *TextFileWriter) Prepare(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, w.dirPerm); err != nil {
		return fmt.Errorf("не удалось создать директорию %s: %w", dir, err)
	}
	return nil
}

// Write перезаписывает файл целиком
func (w *TextFileWriter) Write(path string, content string) error {
	return os.WriteFile(path, []byte(content), w.filePerm)
}
