package capture

import (
	"image"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
)

// Filter — именованное чистое преобразование пикселей в стиле
// полароидных снимков
type Filter struct {
	ID    string
	Name  string
	Apply func(img *image.NRGBA) *image.NRGBA
}

var filters = []Filter{
	{
		ID:   "original",
		Name: "Original",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			// Теплый винтажный тон с зерном и виньеткой
			scaleChannels(img, 1.1, 1.05, 0.9)
			addGrain(img, 15)
			addVignette(img)
			return img
		},
	},
	{
		ID:   "sepia",
		Name: "Sepia",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			applySepiaTone(img)
			return imaging.AdjustContrast(img, 5)
		},
	},
	{
		ID:   "noir",
		Name: "Noir",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			out := imaging.Grayscale(img)
			out = imaging.AdjustContrast(out, 30)
			return imaging.AdjustBrightness(out, -5)
		},
	},
	{
		ID:   "faded",
		Name: "Faded",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			out := imaging.AdjustContrast(img, -15)
			out = imaging.AdjustSaturation(out, -20)
			return imaging.AdjustBrightness(out, 10)
		},
	},
	{
		ID:   "vibrant",
		Name: "Vibrant",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			out := imaging.AdjustSaturation(img, 40)
			out = imaging.AdjustContrast(out, 15)
			return imaging.AdjustBrightness(out, 5)
		},
	},
	{
		ID:   "arctic",
		Name: "Arctic",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			out := imaging.AdjustSaturation(img, -10)
			out = imaging.AdjustBrightness(out, 5)
			scaleChannels(out, 0.95, 1.0, 1.08)
			return out
		},
	},
}

// Filters возвращает каталог доступных фильтров в порядке показа
func Filters() []Filter {
	return filters
}

// ByID находит фильтр по идентификатору; неизвестный id откатывается
// на фильтр по умолчанию
func ByID(id string) Filter {
	for _, f := range filters {
		if f.ID == id {
			return f
		}
	}
	return filters[0]
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// scaleChannels умножает каналы RGB на заданные коэффициенты
func scaleChannels(img *image.NRGBA, r, g, b float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = clamp(float64(img.Pix[i]) * r)
		img.Pix[i+1] = clamp(float64(img.Pix[i+1]) * g)
		img.Pix[i+2] = clamp(float64(img.Pix[i+2]) * b)
	}
}

// addGrain добавляет легкое пленочное зерно
func addGrain(img *image.NRGBA, amount float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		noise := (rand.Float64() - 0.5) * amount
		img.Pix[i] = clamp(float64(img.Pix[i]) + noise)
		img.Pix[i+1] = clamp(float64(img.Pix[i+1]) + noise)
		img.Pix[i+2] = clamp(float64(img.Pix[i+2]) + noise)
	}
}

// addVignette затемняет края кадра радиальным градиентом
func addVignette(img *image.NRGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	cx, cy := float64(width)/2, float64(height)/2
	radius := float64(width) * 0.7

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			dist := math.Sqrt(dx*dx + dy*dy)

			// Затемнение растет от 0.7 радиуса к краю, максимум 40%
			t := (dist/radius - 0.7) / 0.3
			if t <= 0 {
				continue
			}
			if t > 1 {
				t = 1
			}
			factor := 1 - 0.4*t

			i := y*img.Stride + x*4
			img.Pix[i] = clamp(float64(img.Pix[i]) * factor)
			img.Pix[i+1] = clamp(float64(img.Pix[i+1]) * factor)
			img.Pix[i+2] = clamp(float64(img.Pix[i+2]) * factor)
		}
	}
}

// applySepiaTone накладывает классическую сепию
func applySepiaTone(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		r := float64(img.Pix[i])
		g := float64(img.Pix[i+1])
		b := float64(img.Pix[i+2])

		img.Pix[i] = clamp(r*0.393 + g*0.769 + b*0.189)
		img.Pix[i+1] = clamp(r*0.349 + g*0.686 + b*0.168)
		img.Pix[i+2] = clamp(r*0.272 + g*0.534 + b*0.131)
	}
}
