//go:build opencv

package camera

import (
	"fmt"

	"gocv.io/x/gocv"

	"camprobe/internal/application"
	"camprobe/internal/domain"
)

func init() {
	Register("opencv", func(logger application.Logger) application.CameraManager {
		return NewOpenCVManager(logger)
	})
}

// OpenCVManager реализация CameraManager поверх gocv
type OpenCVManager struct {
	logger application.Logger
}

// NewOpenCVManager создает новый менеджер камер OpenCV
func NewOpenCVManager(logger application.Logger) *OpenCVManager {
	return &OpenCVManager{
		logger: logger,
	}
}

// ListDevices не поддерживается: OpenCV не умеет перечислять устройства
func (m *OpenCVManager) ListDevices() ([]domain.VideoDevice, error) {
	return nil, domain.ErrListingUnsupported
}

// OpenCamera открывает камеру с заданным индексом
func (m *OpenCVManager) OpenCamera(config domain.ProbeConfig) (domain.CaptureDevice, error) {
	capture, err := gocv.OpenVideoCapture(config.DeviceIndex)
	if err != nil {
		return nil, err
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("capture device %d is not opened", config.DeviceIndex)
	}

	if config.PreferredWidth > 0 {
		capture.Set(gocv.VideoCaptureFrameWidth, float64(config.PreferredWidth))
	}
	if config.PreferredHeight > 0 {
		capture.Set(gocv.VideoCaptureFrameHeight, float64(config.PreferredHeight))
	}

	m.logger.Debug("OpenCV: устройство %d открыто, кодек %s", config.DeviceIndex, capture.CodecString())

	return &OpenCVCapture{
		capture: capture,
		mat:     gocv.NewMat(),
	}, nil
}

// OpenCVCapture обертка над gocv.VideoCapture
type OpenCVCapture struct {
	capture     *gocv.VideoCapture
	mat         gocv.Mat
	frameNumber int
}

// Properties возвращает параметры, о которых сообщает драйвер
func (c *OpenCVCapture) Properties() domain.DeviceProperties {
	return domain.DeviceProperties{
		Width:  c.capture.Get(gocv.VideoCaptureFrameWidth),
		Height: c.capture.Get(gocv.VideoCaptureFrameHeight),
		FPS:    c.capture.Get(gocv.VideoCaptureFPS),
	}
}

// ReadFrame читает следующий кадр
func (c *OpenCVCapture) ReadFrame() (*domain.VideoFrame, error) {
	if ok := c.capture.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, domain.ErrFrameUnavailable
	}

	c.frameNumber++
	return &domain.VideoFrame{
		Width:  c.mat.Cols(),
		Height: c.mat.Rows(),
		Number: c.frameNumber,
	}, nil
}

// Close освобождает кадр и устройство
func (c *OpenCVCapture) Close() error {
	if err := c.mat.Close(); err != nil {
		return err
	}
	return c.capture.Close()
}
