// Package camera содержит бэкенды захвата видео.
//
// Бэкенд mediadevices собирается всегда. Бэкенд opencv требует установленного
// OpenCV и собирается только с тегом opencv.
package camera

import (
	"fmt"
	"sort"
	"strings"

	"camprobe/internal/application"
)

// Factory создает CameraManager для бэкенда
type Factory func(logger application.Logger) application.CameraManager

var backends = map[string]Factory{}

// Register регистрирует бэкенд под именем name
func Register(name string, factory Factory) {
	backends[name] = factory
}

// Backends возвращает имена зарегистрированных бэкендов
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewManager создает CameraManager выбранного бэкенда
func NewManager(name string, logger application.Logger) (application.CameraManager, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown camera backend %q (available: %s)", name, strings.Join(Backends(), ", "))
	}
	return factory(logger), nil
}
