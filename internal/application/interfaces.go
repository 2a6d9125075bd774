package application

import (
	"time"

	"camprobe/internal/domain"
)

// CameraManager интерфейс для управления камерой
type CameraManager interface {
	// ListDevices возвращает список доступных устройств захвата
	ListDevices() ([]domain.VideoDevice, error)

	// OpenCamera открывает устройство с заданным индексом
	OpenCamera(config domain.ProbeConfig) (domain.CaptureDevice, error)
}

// ImageLoader интерфейс для загрузки изображений
type ImageLoader interface {
	// Load декодирует файл и описывает его буфер в выбранном режиме
	Load(path string, mode domain.ReadMode) (*domain.Image, error)
}

// ReportWriter интерфейс для сохранения текстового отчета
type ReportWriter interface {
	// Prepare создает родительские директории для пути отчета
	Prepare(path string) error

	// Write перезаписывает файл отчета целиком
	Write(path string, content string) error
}

// Clock возвращает текущее время
type Clock func() time.Time

// Logger интерфейс для логирования
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}
