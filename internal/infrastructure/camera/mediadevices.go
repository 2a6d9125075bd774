package camera

import (
	"errors"
	"fmt"

	"github.com/pion/mediadevices/pkg/driver"
	_ "github.com/pion/mediadevices/pkg/driver/camera" // Регистрируем драйвер камеры
	"github.com/pion/mediadevices/pkg/io/video"
	"github.com/pion/mediadevices/pkg/prop"

	"camprobe/internal/application"
	"camprobe/internal/domain"
)

func init() {
	Register("mediadevices", func(logger application.Logger) application.CameraManager {
		return NewMediaDevicesManager(logger)
	})
}

// MediaDevicesManager реализация CameraManager с использованием библиотеки mediadevices
type MediaDevicesManager struct {
	logger application.Logger
	query  func() []driver.Driver
}

// NewMediaDevicesManager создает новый менеджер медиаустройств
func NewMediaDevicesManager(logger application.Logger) *MediaDevicesManager {
	return &MediaDevicesManager{
		logger: logger,
		query: func() []driver.Driver {
			return driver.GetManager().Query(driver.FilterVideoRecorder())
		},
	}
}

// ListDevices возвращает список доступных устройств захвата
func (m *MediaDevicesManager) ListDevices() ([]domain.VideoDevice, error) {
	devices := m.query()
	result := make([]domain.VideoDevice, 0, len(devices))

	for i, d := range devices {
		info := d.Info()
		result = append(result, domain.VideoDevice{
			Index: i,
			ID:    d.ID(),
			Label: info.Label,
			Kind:  string(info.DeviceType),
		})
	}

	return result, nil
}

// OpenCamera открывает камеру с заданным индексом
func (m *MediaDevicesManager) OpenCamera(config domain.ProbeConfig) (domain.CaptureDevice, error) {
	devices := m.query()
	if config.DeviceIndex < 0 || config.DeviceIndex >= len(devices) {
		return nil, fmt.Errorf("no video device at index %d (%d found)", config.DeviceIndex, len(devices))
	}
	d := devices[config.DeviceIndex]

	recorder, ok := d.(driver.VideoRecorder)
	if !ok {
		return nil, fmt.Errorf("device %s is not a video recorder", d.ID())
	}

	if err := d.Open(); err != nil {
		return nil, fmt.Errorf("open %s: %w", d.ID(), err)
	}

	selected, err := selectMode(d.Properties(), config.PreferredWidth, config.PreferredHeight)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("%s: %w", d.ID(), err)
	}
	m.logger.Debug("Режим %s: %dx%d, %.2f fps, формат %s",
		d.ID(), selected.Width, selected.Height, selected.FrameRate, selected.FrameFormat)

	reader, err := recorder.VideoRecord(selected)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("start %s: %w", d.ID(), err)
	}

	return &MediaDevicesCapture{
		device: d,
		reader: reader,
		mode:   selected,
	}, nil
}

// selectMode выбирает режим устройства: предпочтительный размер, если задан, иначе первый
func selectMode(modes []prop.Media, width, height int) (prop.Media, error) {
	if len(modes) == 0 {
		return prop.Media{}, errors.New("device reports no video modes")
	}

	if width > 0 || height > 0 {
		for _, mode := range modes {
			if (width <= 0 || mode.Width == width) && (height <= 0 || mode.Height == height) {
				return mode, nil
			}
		}
	}

	return modes[0], nil
}

// MediaDevicesCapture обертка над открытым драйвером mediadevices
type MediaDevicesCapture struct {
	device      driver.Driver
	reader      video.Reader
	mode        prop.Media
	frameNumber int
}

// Properties возвращает параметры выбранного режима
func (c *MediaDevicesCapture) Properties() domain.DeviceProperties {
	return domain.DeviceProperties{
		Width:  float64(c.mode.Width),
		Height: float64(c.mode.Height),
		FPS:    float64(c.mode.FrameRate),
	}
}

// ReadFrame читает следующий кадр
func (c *MediaDevicesCapture) ReadFrame() (*domain.VideoFrame, error) {
	img, release, err := c.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFrameUnavailable, err)
	}
	// Буфер кадра возвращается драйверу сразу: нужен только размер
	if release != nil {
		defer release()
	}

	if img == nil {
		return nil, domain.ErrFrameUnavailable
	}

	c.frameNumber++
	b := img.Bounds()
	return &domain.VideoFrame{
		Width:  b.Dx(),
		Height: b.Dy(),
		Number: c.frameNumber,
	}, nil
}

// Close закрывает устройство
func (c *MediaDevicesCapture) Close() error {
	return c.device.Close()
}
