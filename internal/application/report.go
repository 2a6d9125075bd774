package application

import (
	"fmt"
	"strings"

	"camprobe/internal/domain"
)

// Prober выполняет одну пробу камеры
type Prober interface {
	Probe(config domain.ProbeConfig) (domain.CameraReading, error)
}

// ReportService опрашивает камеру и сохраняет результат в текстовый файл
type ReportService struct {
	prober Prober
	writer ReportWriter
	logger Logger
}

// NewReportService создает новый сервис отчетов
func NewReportService(prober Prober, writer ReportWriter, logger Logger) *ReportService {
	return &ReportService{
		prober: prober,
		writer: writer,
		logger: logger,
	}
}

// Save опрашивает камеру и записывает отчет по пути path.
// Ошибки камеры попадают в сам отчет; возвращаются только ошибки файловой системы.
func (s *ReportService) Save(path string, config domain.ProbeConfig) (domain.ProbeResult, error) {
	if err := s.writer.Prepare(path); err != nil {
		return domain.ProbeResult{}, fmt.Errorf("prepare report directory: %w", err)
	}

	result := s.run(config)

	if err := s.writer.Write(path, FormatReport(result)); err != nil {
		return result, fmt.Errorf("write report %s: %w", path, err)
	}

	if _, ok := result.Reading(); ok {
		s.logger.Info("Camera information saved to %s", path)
	} else {
		s.logger.Error("Camera access failed, wrote error to %s: %v", path, result.Err())
	}

	return result, nil
}

// run превращает ошибку и панику бэкенда в неуспешный результат
func (s *ReportService) run(config domain.ProbeConfig) (result domain.ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.ProbeFailed(fmt.Errorf("%w: %v", domain.ErrProbeFailed, r))
		}
	}()

	reading, err := s.prober.Probe(config)
	if err != nil {
		return domain.ProbeFailed(err)
	}
	return domain.ProbeSucceeded(reading)
}

// FormatReport форматирует результат пробы в текст отчета
func FormatReport(result domain.ProbeResult) string {
	reading, ok := result.Reading()
	if !ok {
		// отчет об ошибке всегда занимает одну строку
		msg := strings.ReplaceAll(result.Err().Error(), "\n", " ")
		return fmt.Sprintf("Error accessing camera: %s\n", msg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "fps: %.2f\n", reading.FPS)
	fmt.Fprintf(&b, "height: %.0f\n", reading.Height)
	fmt.Fprintf(&b, "width: %.0f\n", reading.Width)
	return b.String()
}
