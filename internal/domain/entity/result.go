package entity

import "time"

// ImageResult итог обработки одного снимка
type ImageResult struct {
	ImageID     string
	Casualties  []Casualty
	Pads        []RescuePad
	TotalScore  float64 // сумма выбранных оценок назначения
	RescueRatio float64 // TotalScore / число пострадавших
}

// AssignedCount возвращает число пострадавших с назначенной площадкой
func (r *ImageResult) AssignedCount() int {
	n := 0
	for _, c := range r.Casualties {
		if c.IsAssigned() {
			n++
		}
	}
	return n
}

// RenderedImages две картинки с разметкой: оценки и линии назначений
type RenderedImages struct {
	Scored   []byte
	Assigned []byte
}

// RatioEntry коэффициент спасения одного снимка
type RatioEntry struct {
	ImageID string
	Ratio   float64
}

// BatchReport рейтинг снимков пакета по убыванию коэффициента
type BatchReport struct {
	ID        string
	CreatedAt time.Time
	Entries   []RatioEntry
}
