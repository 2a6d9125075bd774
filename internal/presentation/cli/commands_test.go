package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"camprobe/internal/application"
	"camprobe/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}

type stubLoader struct {
	img *domain.Image
	err error
}

func (l stubLoader) Load(string, domain.ReadMode) (*domain.Image, error) {
	return l.img, l.err
}

type staticDevice struct{ props domain.DeviceProperties }

func (d staticDevice) Properties() domain.DeviceProperties { return d.props }
func (d staticDevice) ReadFrame() (*domain.VideoFrame, error) {
	return &domain.VideoFrame{Width: int(d.props.Width), Height: int(d.props.Height)}, nil
}
func (d staticDevice) Close() error { return nil }

type stubCameras struct {
	device  domain.CaptureDevice
	devices []domain.VideoDevice
	err     error
}

func (m stubCameras) ListDevices() ([]domain.VideoDevice, error) { return m.devices, m.err }
func (m stubCameras) OpenCamera(domain.ProbeConfig) (domain.CaptureDevice, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.device, nil
}

type mapWriter map[string]string

func (w mapWriter) Prepare(string) error { return nil }
func (w mapWriter) Write(path, content string) error {
	w[path] = content
	return nil
}

func newTestCLI(loader application.ImageLoader, cameras application.CameraManager, files mapWriter, out *bytes.Buffer) *CLI {
	inspector := application.NewImageInspector(loader, out, nopLogger{})
	probe := application.NewCameraProbe(cameras, nopLogger{})
	reporter := application.NewReportService(probe, files, nopLogger{})
	return NewCLI(inspector, probe, reporter, nopLogger{}, out)
}

func TestCLI_Run(t *testing.T) {
	var out bytes.Buffer
	files := mapWriter{}
	loader := stubLoader{img: &domain.Image{Shape: []int{512, 512, 3}, DType: domain.Uint8}}
	cameras := stubCameras{device: staticDevice{props: domain.DeviceProperties{Width: 640, Height: 480, FPS: 29.97}}}

	app := newTestCLI(loader, cameras, files, &out)
	app.SetConfig(DefaultConfig())

	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Channels: 3") {
		t.Errorf("Expected image metadata on stdout, got %q", out.String())
	}
	if got := files["solutions/camera_outputs.txt"]; got != "fps: 29.97\nheight: 480\nwidth: 640\n" {
		t.Errorf("Unexpected report %q", got)
	}
}

func TestCLI_RunContinuesAfterImageFailure(t *testing.T) {
	var out bytes.Buffer
	files := mapWriter{}
	loader := stubLoader{err: domain.ErrImageUnreadable}
	cameras := stubCameras{err: errors.New("no camera")}

	app := newTestCLI(loader, cameras, files, &out)
	app.SetConfig(DefaultConfig())

	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.HasPrefix(out.String(), "Error:") {
		t.Errorf("Expected image error on stdout, got %q", out.String())
	}
	if got := files["solutions/camera_outputs.txt"]; !strings.HasPrefix(got, "Error accessing camera: ") {
		t.Errorf("Unexpected report %q", got)
	}
}

func TestCLI_ListDevices(t *testing.T) {
	var out bytes.Buffer
	cameras := stubCameras{devices: []domain.VideoDevice{
		{Index: 0, ID: "video0", Label: "Integrated Camera", Kind: "camera"},
	}}

	app := newTestCLI(stubLoader{}, cameras, mapWriter{}, &out)
	config := DefaultConfig()
	config.ListDevices = true
	app.SetConfig(config)

	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "[0] Integrated Camera (camera) video0") {
		t.Errorf("Unexpected listing %q", out.String())
	}
}

func TestCLI_Skips(t *testing.T) {
	var out bytes.Buffer
	files := mapWriter{}

	app := newTestCLI(stubLoader{}, stubCameras{}, files, &out)
	config := DefaultConfig()
	config.SkipImage = true
	config.SkipCamera = true
	app.SetConfig(config)

	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Len() != 0 || len(files) != 0 {
		t.Errorf("Expected no output, got %q and %v", out.String(), files)
	}
}
