package application

import (
	"fmt"
	"time"

	"camprobe/internal/domain"
)

// CameraProbe сервис для опроса камеры
type CameraProbe struct {
	cameraManager CameraManager
	logger        Logger
	clock         Clock
}

// NewCameraProbe создает новый сервис опроса камеры
func NewCameraProbe(cameraManager CameraManager, logger Logger) *CameraProbe {
	return &CameraProbe{
		cameraManager: cameraManager,
		logger:        logger,
		clock:         time.Now,
	}
}

// SetClock подменяет источник времени для ручного замера FPS
func (s *CameraProbe) SetClock(clock Clock) {
	if clock == nil {
		clock = time.Now
	}
	s.clock = clock
}

// ListDevices возвращает список доступных устройств захвата
func (s *CameraProbe) ListDevices() ([]domain.VideoDevice, error) {
	devices, err := s.cameraManager.ListDevices()
	if err != nil {
		s.logger.Error("Ошибка получения списка устройств: %v", err)
		return nil, err
	}
	return devices, nil
}

// Probe открывает камеру и возвращает частоту кадров, высоту и ширину.
// Устройство закрывается на любом пути выхода.
func (s *CameraProbe) Probe(config domain.ProbeConfig) (reading domain.CameraReading, err error) {
	s.logger.Debug("Открытие камеры %d", config.DeviceIndex)

	device, err := s.cameraManager.OpenCamera(config)
	if err != nil {
		return domain.CameraReading{}, fmt.Errorf(
			"%w: could not open camera %d, is it connected or used by another app: %w",
			domain.ErrDeviceUnavailable, config.DeviceIndex, err)
	}
	defer func() {
		if cerr := device.Close(); cerr != nil {
			s.logger.Warn("Ошибка закрытия камеры: %v", cerr)
		}
	}()

	// Прогрев: даем автоэкспозиции и автофокусу стабилизироваться
	for i := 0; i < config.WarmupFrames; i++ {
		if _, err := device.ReadFrame(); err != nil {
			s.logger.Debug("Кадр прогрева %d не прочитан: %v", i+1, err)
		}
	}

	props := device.Properties()
	reading = domain.CameraReading{
		FPS:    props.FPS,
		Height: props.Height,
		Width:  props.Width,
	}
	s.logger.Debug("Драйвер сообщает: %.0fx%.0f, %.2f fps", props.Width, props.Height, props.FPS)

	if reading.Width <= 0 || reading.Height <= 0 {
		frame, err := device.ReadFrame()
		if err == nil && frame != nil {
			reading.Width = float64(frame.Width)
			reading.Height = float64(frame.Height)
			s.logger.Debug("Размер взят из живого кадра: %dx%d", frame.Width, frame.Height)
		} else {
			s.logger.Warn("Драйвер не сообщил размер кадра, и кадр не прочитан: %v", err)
		}
	}

	if !domain.FPSUsable(reading.FPS) {
		reading.FPS = s.measureFPS(device, config.FPSSampleFrames)
	}

	return reading, nil
}

// measureFPS считает частоту кадров по числу прочитанных кадров за прошедшее время
func (s *CameraProbe) measureFPS(device domain.CaptureDevice, sampleFrames int) float64 {
	frames := 0
	start := s.clock()
	for frames < sampleFrames {
		if _, err := device.ReadFrame(); err != nil {
			s.logger.Debug("Замер FPS прерван после %d кадров: %v", frames, err)
			break
		}
		frames++
	}
	elapsed := s.clock().Sub(start).Seconds()

	if elapsed <= 0 {
		s.logger.Debug("Замер FPS: %d кадров, время не измерено", frames)
		return 0.0
	}

	fps := float64(frames) / elapsed
	s.logger.Debug("Замер FPS: %d кадров за %.3f с = %.2f fps", frames, elapsed, fps)
	return fps
}
