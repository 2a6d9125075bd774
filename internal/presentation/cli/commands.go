package cli

import (
	"fmt"
	"io"

	"camprobe/internal/application"
	"camprobe/internal/domain"
)

// CLI представляет CLI интерфейс приложения
type CLI struct {
	inspector *application.ImageInspector
	probe     *application.CameraProbe
	reporter  *application.ReportService
	logger    application.Logger
	out       io.Writer
	config    *Config
}

// NewCLI создает новый CLI интерфейс
func NewCLI(
	inspector *application.ImageInspector,
	probe *application.CameraProbe,
	reporter *application.ReportService,
	logger application.Logger,
	out io.Writer,
) *CLI {
	return &CLI{
		inspector: inspector,
		probe:     probe,
		reporter:  reporter,
		logger:    logger,
		out:       out,
	}
}

// SetConfig устанавливает конфигурацию напрямую
func (c *CLI) SetConfig(config *Config) {
	c.config = config
}

// Run запускает CLI: сначала инспектор изображения, затем проба камеры
func (c *CLI) Run() error {
	if c.config == nil {
		c.config = DefaultConfig()
	}

	// Если нужно вывести список устройств
	if c.config.ListDevices {
		return c.listDevices()
	}

	if !c.config.SkipImage {
		// Нечитаемое изображение не прерывает работу
		if _, err := c.inspector.InspectFile(c.config.ImagePath, c.config.ReadMode); err != nil {
			c.logger.Warn("Проверка изображения пропущена: %v", err)
		}
	}

	if c.config.SkipCamera {
		return nil
	}

	if _, err := c.reporter.Save(c.config.OutputPath, c.config.ProbeConfig()); err != nil {
		return err
	}
	return nil
}

// listDevices выводит список доступных устройств
func (c *CLI) listDevices() error {
	devices, err := c.probe.ListDevices()
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Fprintln(c.out, "No video devices found.")
		return nil
	}

	fmt.Fprintln(c.out, "Available devices:")
	for _, device := range devices {
		fmt.Fprintln(c.out, formatDevice(device))
	}

	return nil
}

func formatDevice(device domain.VideoDevice) string {
	return fmt.Sprintf("[%d] %s (%s) %s", device.Index, device.Label, device.Kind, device.ID)
}
