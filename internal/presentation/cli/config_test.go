package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"camprobe/internal/domain"
	"camprobe/internal/infrastructure/logger"
)

func TestParseFlags_Defaults(t *testing.T) {
	config, err := ParseFlags("camprobe", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if config.ImagePath != "lena-1.png" {
		t.Errorf("Expected image lena-1.png, got %s", config.ImagePath)
	}
	if config.OutputPath != "solutions/camera_outputs.txt" {
		t.Errorf("Expected output solutions/camera_outputs.txt, got %s", config.OutputPath)
	}
	if config.ReadMode != domain.ReadColor {
		t.Errorf("Expected read mode color, got %s", config.ReadMode)
	}
	if config.Backend != "mediadevices" {
		t.Errorf("Expected backend mediadevices, got %s", config.Backend)
	}
	if got := config.ProbeConfig(); got != domain.DefaultProbeConfig() {
		t.Errorf("Expected default probe config, got %+v", got)
	}
	if config.Color != logger.ColorAuto {
		t.Errorf("Expected color auto, got %s", config.Color)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	args := []string{
		"-image", "photo.jpg",
		"-read-mode", "grayscale",
		"-output", "out/report.txt",
		"-device", "2",
		"-warmup", "0",
		"-fps-samples", "120",
		"-width", "1280",
		"-height", "720",
		"-color", "never",
		"-debug",
	}

	config, err := ParseFlags("camprobe", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	want := domain.ProbeConfig{DeviceIndex: 2, WarmupFrames: 0, FPSSampleFrames: 120, PreferredWidth: 1280, PreferredHeight: 720}
	if got := config.ProbeConfig(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if config.ImagePath != "photo.jpg" || config.OutputPath != "out/report.txt" {
		t.Errorf("Unexpected paths %s, %s", config.ImagePath, config.OutputPath)
	}
	if config.ReadMode != domain.ReadGrayscale || config.Color != logger.ColorNever || !config.Debug {
		t.Errorf("Unexpected config %+v", config)
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camprobe.yaml")
	data := []byte(`
image: frames/first.png
read_mode: unchanged
output: reports/camera.txt
device: 1
warmup: 10
fps_samples: 30
debug: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	config, err := ParseFlags("camprobe", []string{"-config", path, "-warmup", "3"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if config.ImagePath != "frames/first.png" || config.ReadMode != domain.ReadUnchanged {
		t.Errorf("Expected image settings from file, got %s %s", config.ImagePath, config.ReadMode)
	}
	if config.OutputPath != "reports/camera.txt" || config.DeviceIndex != 1 || config.FPSSampleFrames != 30 {
		t.Errorf("Expected camera settings from file, got %+v", config)
	}
	if config.WarmupFrames != 3 {
		t.Errorf("Expected explicit flag to win over file, got warmup %d", config.WarmupFrames)
	}
	if config.Backend != "mediadevices" {
		t.Errorf("Expected default backend for keys missing from file, got %s", config.Backend)
	}
	if !config.Debug {
		t.Error("Expected debug from file")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	cases := map[string][]string{
		"negative device":  {"-device", "-1"},
		"negative warmup":  {"-warmup", "-5"},
		"negative samples": {"-fps-samples", "-1"},
		"bad read mode":    {"-read-mode", "sepia"},
		"bad color":        {"-color", "rainbow"},
		"empty output":     {"-output", ""},
		"unknown flag":     {"-fps", "30"},
		"missing config":   {"-config", "/nonexistent/camprobe.yaml"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseFlags("camprobe", args, io.Discard); err == nil {
				t.Errorf("Expected error for %v", args)
			}
		})
	}
}

func TestConfig_ValidateSkips(t *testing.T) {
	config := DefaultConfig()
	config.SkipCamera = true
	config.OutputPath = ""
	if err := config.Validate(); err != nil {
		t.Errorf("Expected empty output to be allowed when camera is skipped: %v", err)
	}
}
