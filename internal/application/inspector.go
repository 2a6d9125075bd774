package application

import (
	"fmt"
	"io"

	"camprobe/internal/domain"
)

// ImageInspector выводит метаданные изображения
type ImageInspector struct {
	loader ImageLoader
	out    io.Writer
	logger Logger
}

// NewImageInspector создает новый инспектор изображений
func NewImageInspector(loader ImageLoader, out io.Writer, logger Logger) *ImageInspector {
	return &ImageInspector{
		loader: loader,
		out:    out,
		logger: logger,
	}
}

// InspectFile загружает изображение и выводит его метаданные.
// Ошибка загрузки возвращается, но сообщение об отсутствующем изображении
// уже напечатано.
func (s *ImageInspector) InspectFile(path string, mode domain.ReadMode) (*domain.ImageMetadata, error) {
	img, err := s.loader.Load(path, mode)
	if err != nil {
		s.logger.Error("Не удалось загрузить изображение %s: %v", path, err)
		s.Inspect(nil)
		return nil, err
	}

	s.logger.Debug("Изображение %s: формат %s, форма %v", path, img.Format, img.Shape)
	return s.Inspect(img), nil
}

// Inspect выводит метаданные изображения. Для nil печатает ошибку и возвращает nil.
func (s *ImageInspector) Inspect(img *domain.Image) *domain.ImageMetadata {
	if img == nil {
		fmt.Fprintln(s.out, "Error: image could not be read. Make sure the file exists and is a supported image.")
		return nil
	}

	meta, err := Describe(img)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "Height: %d\n", meta.Height)
	fmt.Fprintf(s.out, "Width: %d\n", meta.Width)
	fmt.Fprintf(s.out, "Channels: %d\n", meta.Channels)
	fmt.Fprintf(s.out, "Size: %d\n", meta.Size)
	fmt.Fprintf(s.out, "Data Type: %s\n", meta.DType)

	return &meta
}

// Describe вычисляет метаданные по форме буфера
func Describe(img *domain.Image) (domain.ImageMetadata, error) {
	shape := img.Shape
	if len(shape) != 2 && len(shape) != 3 {
		return domain.ImageMetadata{}, fmt.Errorf("%w: unsupported shape %v", domain.ErrImageUnreadable, shape)
	}

	meta := domain.ImageMetadata{
		Height:   shape[0],
		Width:    shape[1],
		Channels: 1,
		DType:    img.DType,
	}
	if len(shape) == 3 {
		meta.Channels = shape[2]
	}

	meta.Size = 1
	for _, n := range shape {
		meta.Size *= n
	}

	return meta, nil
}
