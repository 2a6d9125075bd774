package application

import (
	"errors"
	"fmt"
	"time"

	"camprobe/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}

var errReadFailed = errors.New("read failed")

// fakeDevice отдает frames кадров, после чего каждое чтение завершается ошибкой
type fakeDevice struct {
	props  domain.DeviceProperties
	frames int
	width  int
	height int
	panics bool

	reads  int
	closed int
}

func (d *fakeDevice) Properties() domain.DeviceProperties {
	if d.panics {
		panic("driver crashed")
	}
	return d.props
}

func (d *fakeDevice) ReadFrame() (*domain.VideoFrame, error) {
	if d.reads >= d.frames {
		return nil, errReadFailed
	}
	d.reads++
	return &domain.VideoFrame{Width: d.width, Height: d.height, Number: d.reads}, nil
}

func (d *fakeDevice) Close() error {
	d.closed++
	return nil
}

type fakeCameraManager struct {
	device  *fakeDevice
	openErr error
	devices []domain.VideoDevice
	opened  []int
}

func (m *fakeCameraManager) ListDevices() ([]domain.VideoDevice, error) {
	return m.devices, nil
}

func (m *fakeCameraManager) OpenCamera(config domain.ProbeConfig) (domain.CaptureDevice, error) {
	m.opened = append(m.opened, config.DeviceIndex)
	if m.openErr != nil {
		return nil, m.openErr
	}
	if m.device == nil {
		return nil, fmt.Errorf("no device at index %d", config.DeviceIndex)
	}
	return m.device, nil
}

// stepClock возвращает время, сдвигаясь на step при каждом вызове
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

type fakeLoader struct {
	img *domain.Image
	err error
}

func (l fakeLoader) Load(string, domain.ReadMode) (*domain.Image, error) {
	return l.img, l.err
}

type memWriter struct {
	prepared []string
	files    map[string]string
	writes   int
	failOn   error
}

func (w *memWriter) Prepare(path string) error {
	w.prepared = append(w.prepared, path)
	return nil
}

func (w *memWriter) Write(path, content string) error {
	if w.failOn != nil {
		return w.failOn
	}
	if w.files == nil {
		w.files = make(map[string]string)
	}
	w.files[path] = content
	w.writes++
	return nil
}
