package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"camprobe/internal/domain"
	"camprobe/internal/infrastructure/logger"
)

// Config представляет конфигурацию CLI
type Config struct {
	ImagePath  string          `yaml:"image"`     // По умолчанию "lena-1.png"
	ReadMode   domain.ReadMode `yaml:"read_mode"` // По умолчанию "color"
	OutputPath string          `yaml:"output"`    // По умолчанию "solutions/camera_outputs.txt"
	Backend    string          `yaml:"backend"`   // По умолчанию "mediadevices"

	DeviceIndex     int `yaml:"device"`      // По умолчанию 0
	WarmupFrames    int `yaml:"warmup"`      // По умолчанию 5
	FPSSampleFrames int `yaml:"fps_samples"` // По умолчанию 60
	Width           int `yaml:"width"`       // 0 - режим драйвера
	Height          int `yaml:"height"`      // 0 - режим драйвера

	Debug bool             `yaml:"debug"`
	Color logger.ColorMode `yaml:"color"` // По умолчанию "auto"

	ListDevices bool `yaml:"-"`
	SkipImage   bool `yaml:"skip_image"`
	SkipCamera  bool `yaml:"skip_camera"`

	ConfigFile string `yaml:"-"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	probe := domain.DefaultProbeConfig()
	return &Config{
		ImagePath:       "lena-1.png",
		ReadMode:        domain.ReadColor,
		OutputPath:      "solutions/camera_outputs.txt",
		Backend:         "mediadevices",
		DeviceIndex:     probe.DeviceIndex,
		WarmupFrames:    probe.WarmupFrames,
		FPSSampleFrames: probe.FPSSampleFrames,
		Color:           logger.ColorAuto,
	}
}

// ProbeConfig возвращает параметры пробы камеры
func (c *Config) ProbeConfig() domain.ProbeConfig {
	return domain.ProbeConfig{
		DeviceIndex:     c.DeviceIndex,
		WarmupFrames:    c.WarmupFrames,
		FPSSampleFrames: c.FPSSampleFrames,
		PreferredWidth:  c.Width,
		PreferredHeight: c.Height,
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errs []error
	if !c.SkipImage && c.ImagePath == "" {
		errs = append(errs, errors.New("image path must not be empty"))
	}
	if !c.ReadMode.Valid() {
		errs = append(errs, fmt.Errorf("invalid read mode %q (color, grayscale, unchanged)", c.ReadMode))
	}
	if !c.SkipCamera && c.OutputPath == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	if c.Backend == "" {
		errs = append(errs, errors.New("camera backend must not be empty"))
	}
	if c.DeviceIndex < 0 {
		errs = append(errs, fmt.Errorf("device index must be >= 0, got %d", c.DeviceIndex))
	}
	if c.WarmupFrames < 0 {
		errs = append(errs, fmt.Errorf("warmup frames must be >= 0, got %d", c.WarmupFrames))
	}
	if c.FPSSampleFrames < 0 {
		errs = append(errs, fmt.Errorf("fps sample frames must be >= 0, got %d", c.FPSSampleFrames))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("preferred size must be >= 0, got %dx%d", c.Width, c.Height))
	}
	switch c.Color {
	case logger.ColorAuto, logger.ColorAlways, logger.ColorNever:
	default:
		errs = append(errs, fmt.Errorf("invalid color mode %q (auto, always, never)", c.Color))
	}
	return errors.Join(errs...)
}

// LoadFile накладывает значения из YAML-файла на конфигурацию
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ParseFlags парсит аргументы командной строки.
// Порядок: значения по умолчанию, затем файл -config, затем явно заданные флаги.
func ParseFlags(name string, args []string, output io.Writer) (*Config, error) {
	config := DefaultConfig()
	flags := defineFlags(name, config)
	flags.SetOutput(output)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if config.ConfigFile != "" {
		fileConfig := DefaultConfig()
		if err := fileConfig.LoadFile(config.ConfigFile); err != nil {
			return nil, err
		}
		fileConfig.ConfigFile = config.ConfigFile

		// повторно применяем только явно заданные флаги
		explicit := defineFlags(name, fileConfig)
		flags.Visit(func(f *flag.Flag) {
			_ = explicit.Set(f.Name, f.Value.String())
		})
		config = fileConfig
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// defineFlags описывает флаги поверх полей config
func defineFlags(name string, config *Config) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	flags.StringVar(&config.ConfigFile, "config", config.ConfigFile, "YAML-файл конфигурации")
	flags.StringVar(&config.ImagePath, "image", config.ImagePath, "путь к изображению")
	flags.StringVar((*string)(&config.ReadMode), "read-mode", string(config.ReadMode), "режим чтения изображения: color, grayscale, unchanged")
	flags.StringVar(&config.OutputPath, "output", config.OutputPath, "файл отчета о камере")
	flags.StringVar(&config.Backend, "backend", config.Backend, "бэкенд захвата видео")
	flags.IntVar(&config.DeviceIndex, "device", config.DeviceIndex, "индекс камеры")
	flags.IntVar(&config.WarmupFrames, "warmup", config.WarmupFrames, "число кадров прогрева")
	flags.IntVar(&config.FPSSampleFrames, "fps-samples", config.FPSSampleFrames, "максимум кадров для замера FPS")
	flags.IntVar(&config.Width, "width", config.Width, "желаемая ширина кадра (0 - режим драйвера)")
	flags.IntVar(&config.Height, "height", config.Height, "желаемая высота кадра (0 - режим драйвера)")
	flags.BoolVar(&config.Debug, "debug", config.Debug, "включить отладочные сообщения")
	flags.StringVar((*string)(&config.Color), "color", string(config.Color), "раскраска логов: auto, always, never")
	flags.BoolVar(&config.ListDevices, "list-devices", config.ListDevices, "показать список доступных камер и выйти")
	flags.BoolVar(&config.SkipImage, "skip-image", config.SkipImage, "не проверять изображение")
	flags.BoolVar(&config.SkipCamera, "skip-camera", config.SkipCamera, "не опрашивать камеру")

	return flags
}
