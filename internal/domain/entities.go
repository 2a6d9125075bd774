package domain

import "math"

// DType описывает числовой формат одного элемента изображения
type DType string

const (
	Uint8  DType = "uint8"  // 8 бит без знака
	Uint16 DType = "uint16" // 16 бит без знака
)

// ReadMode определяет, в каком виде загружать изображение
type ReadMode string

const (
	ReadColor     ReadMode = "color"     // 3 канала по 8 бит, с учетом EXIF-ориентации
	ReadGrayscale ReadMode = "grayscale" // 1 канал по 8 бит, с учетом EXIF-ориентации
	ReadUnchanged ReadMode = "unchanged" // родной формат файла
)

// Valid сообщает, известен ли режим чтения
func (m ReadMode) Valid() bool {
	switch m {
	case ReadColor, ReadGrayscale, ReadUnchanged:
		return true
	}
	return false
}

// Image описывает декодированный буфер изображения
type Image struct {
	Shape  []int  // (высота, ширина) или (высота, ширина, каналы)
	DType  DType  // Тип элемента
	Format string // Формат исходного файла (png, jpeg, ...)
}

// ImageMetadata содержит метаданные, выводимые инспектором
type ImageMetadata struct {
	Height   int
	Width    int
	Channels int
	Size     int // Общее число элементов
	DType    DType
}

// VideoFrame представляет один живой кадр с камеры
type VideoFrame struct {
	Width  int // Ширина кадра в пикселях
	Height int // Высота кадра в пикселях
	Number int // Номер кадра с момента открытия устройства
}

// VideoDevice представляет устройство захвата видео
type VideoDevice struct {
	Index int    // Индекс, по которому устройство открывает проба
	ID    string // Уникальный идентификатор устройства
	Label string // Человекочитаемое имя устройства
	Kind  string // Тип устройства
}

// DeviceProperties - параметры, о которых сообщает драйвер устройства.
// Нулевые и отрицательные значения означают, что драйвер их не знает.
type DeviceProperties struct {
	Width  float64
	Height float64
	FPS    float64
}

// CameraReading - итоговый результат пробы камеры
type CameraReading struct {
	FPS    float64
	Height float64
	Width  float64
}

// ProbeResult содержит либо показания камеры, либо ошибку, но не оба сразу
type ProbeResult struct {
	reading CameraReading
	err     error
}

// ProbeSucceeded создает успешный результат пробы
func ProbeSucceeded(reading CameraReading) ProbeResult {
	return ProbeResult{reading: reading}
}

// ProbeFailed создает неуспешный результат пробы
func ProbeFailed(err error) ProbeResult {
	if err == nil {
		err = ErrProbeFailed
	}
	return ProbeResult{err: err}
}

// Reading возвращает показания камеры и true, если проба прошла успешно
func (r ProbeResult) Reading() (CameraReading, bool) {
	return r.reading, r.err == nil
}

// Err возвращает ошибку пробы или nil
func (r ProbeResult) Err() error {
	return r.err
}

// ProbeConfig содержит параметры пробы камеры
type ProbeConfig struct {
	DeviceIndex     int // Индекс устройства. По умолчанию 0.
	WarmupFrames    int // Кадры, отбрасываемые после открытия. По умолчанию 5.
	FPSSampleFrames int // Максимум кадров для ручного замера FPS. По умолчанию 60.

	// Желаемый режим устройства; 0 оставляет режим драйвера по умолчанию
	PreferredWidth  int
	PreferredHeight int
}

// DefaultProbeConfig возвращает параметры пробы по умолчанию
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		DeviceIndex:     0,
		WarmupFrames:    5,
		FPSSampleFrames: 60,
	}
}

// FPSUsable сообщает, можно ли доверять частоте кадров от драйвера
func FPSUsable(fps float64) bool {
	return !math.IsNaN(fps) && fps >= 1
}

// CaptureDevice - открытое устройство захвата
type CaptureDevice interface {
	Properties() DeviceProperties
	ReadFrame() (*VideoFrame, error)
	Close() error
}
