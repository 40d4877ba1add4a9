package capture

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Оптимальное разрешение для мобильной загрузки (баланс качества и скорости)
const (
	TargetMaxDimension = 1280 // Максимальная ширина или высота
	JPEGQuality        = 75
)

// FrameSource отдает текущий кадр живого источника видео.
// Источник, еще не готовый к съемке, возвращает nil-кадр либо кадр
// с нулевыми размерами
type FrameSource interface {
	Frame() (image.Image, error)
}

// EncodedImage — сжатый кадр, живет только между съемкой и загрузкой
type EncodedImage struct {
	Data     []byte
	Width    int
	Height   int
	FilterID string
}

type Capturer struct {
	maxDimension int
	quality      int
}

func NewCapturer() *Capturer {
	return &Capturer{
		maxDimension: TargetMaxDimension,
		quality:      JPEGQuality,
	}
}

// Capture снимает кадр с источника и прогоняет его через обработку.
// Если источник не готов, возвращает nil без ошибки
func (c *Capturer) Capture(src FrameSource, filterID string) (*EncodedImage, error) {
	frame, err := src.Frame()
	if err != nil {
		return nil, fmt.Errorf("failed to grab frame: %w", err)
	}
	if frame == nil {
		return nil, nil
	}
	return c.Process(frame, filterID)
}

// Process уменьшает кадр до целевого размера с сохранением пропорций,
// применяет выбранный фильтр и кодирует результат в JPEG
func (c *Capturer) Process(frame image.Image, filterID string) (*EncodedImage, error) {
	bounds := frame.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		// Кадр без размеров — источник не готов, это не ошибка
		return nil, nil
	}

	img := imaging.Clone(frame)
	if width > c.maxDimension || height > c.maxDimension {
		img = imaging.Fit(img, c.maxDimension, c.maxDimension, imaging.Lanczos)
	}

	filter := ByID(filterID)
	img = filter.Apply(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	out := img.Bounds()
	return &EncodedImage{
		Data:     buf.Bytes(),
		Width:    out.Dx(),
		Height:   out.Dy(),
		FilterID: filter.ID,
	}, nil
}
