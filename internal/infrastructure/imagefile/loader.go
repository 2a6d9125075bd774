package imagefile

import (
	"fmt"
	"image"
	"os"

	// Регистрируем дополнительные декодеры
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"camprobe/internal/application"
	"camprobe/internal/domain"
)

// Loader загружает изображения с диска
type Loader struct {
	logger application.Logger
}

// NewLoader создает новый загрузчик изображений
func NewLoader(logger application.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load декодирует файл и описывает его буфер в выбранном режиме
func (l *Loader) Load(path string, mode domain.ReadMode) (*domain.Image, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown read mode %q", domain.ErrImageUnreadable, mode)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrImageUnreadable, path, err)
	}

	// В режиме unchanged ориентация из EXIF не применяется
	var opts []imaging.DecodeOption
	if mode != domain.ReadUnchanged {
		opts = append(opts, imaging.AutoOrientation(true))
	}

	img, err := imaging.Open(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrImageUnreadable, path, err)
	}

	shape, dtype := Layout(img, mode)
	l.logger.Debug("Декодировано %s (%T) как %v %s", path, img, shape, dtype)

	return &domain.Image{
		Shape:  shape,
		DType:  dtype,
		Format: format,
	}, nil
}

// detectFormat определяет формат по содержимому файла
func detectFormat(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", err
	}
	return format, nil
}

// Layout возвращает форму буфера и тип элемента, которые получились бы при чтении в режиме mode
func Layout(img image.Image, mode domain.ReadMode) ([]int, domain.DType) {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	switch mode {
	case domain.ReadGrayscale:
		return []int{h, w}, domain.Uint8
	case domain.ReadColor:
		return []int{h, w, 3}, domain.Uint8
	}

	switch img.(type) {
	case *image.Gray, *image.Alpha:
		return []int{h, w}, domain.Uint8
	case *image.Gray16, *image.Alpha16:
		return []int{h, w}, domain.Uint16
	case *image.RGBA, *image.NRGBA:
		return []int{h, w, 4}, domain.Uint8
	case *image.RGBA64, *image.NRGBA64:
		return []int{h, w, 4}, domain.Uint16
	default:
		// YCbCr, Paletted, CMYK и прочие раскладываются в три 8-битных канала
		return []int{h, w, 3}, domain.Uint8
	}
}
