package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"camprobe/internal/application"
	"camprobe/internal/infrastructure/camera"
	"camprobe/internal/infrastructure/imagefile"
	"camprobe/internal/infrastructure/logger"
	"camprobe/internal/infrastructure/report"
	"camprobe/internal/presentation/cli"
)

func main() {
	// Парсим флаги и файл конфигурации
	config, err := cli.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	// Инициализируем логгер
	stdLogger := logger.NewStdLogger(config.Debug, config.Color)

	// Инициализируем инфраструктурные компоненты
	cameraManager, err := camera.NewManager(config.Backend, stdLogger)
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}
	imageLoader := imagefile.NewLoader(stdLogger)
	reportWriter := report.NewTextFileWriter()

	// Инициализируем сервисы приложения
	inspector := application.NewImageInspector(imageLoader, os.Stdout, stdLogger)
	probe := application.NewCameraProbe(cameraManager, stdLogger)
	reporter := application.NewReportService(probe, reportWriter, stdLogger)

	cliApp := cli.NewCLI(inspector, probe, reporter, stdLogger, os.Stdout)
	cliApp.SetConfig(config)

	// Запускаем CLI
	if err := cliApp.Run(); err != nil {
		log.Fatalf("Ошибка: %v", err)
	}
}
