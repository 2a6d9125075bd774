package domain

import "errors"

var (
	// ErrImageUnreadable - файл изображения отсутствует или не декодируется
	ErrImageUnreadable = errors.New("image unreadable")

	// ErrDeviceUnavailable - устройство захвата не удалось открыть
	ErrDeviceUnavailable = errors.New("device unavailable")

	// ErrFrameUnavailable - устройство не отдало кадр
	ErrFrameUnavailable = errors.New("frame unavailable")

	// ErrListingUnsupported - бэкенд не умеет перечислять устройства
	ErrListingUnsupported = errors.New("device listing is not supported by this backend")

	ErrProbeFailed = errors.New("camera probe failed")
)
