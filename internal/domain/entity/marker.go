package entity

import "math"

// Point координата пикселя на снимке
type Point struct {
	X int
	Y int
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (p Point) DistanceTo(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// HSV цвет в 8-битной шкале OpenCV (H 0..179, S и V 0..255)
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// RawMarker описание одного контура, полученное от экстрактора
type RawMarker struct {
	Area        float64 // площадь контура в пикселях
	Perimeter   float64 // длина замкнутого контура
	CornerCount int     // число вершин после аппроксимации
	Centroid    Point   // центр масс контура
	Color       HSV     // цвет в центре масс
	Degenerate  bool    // нулевой момент m00, центр не определён
}

// Circularity возвращает 4π·S/P², 1.0 у идеального круга.
func (m RawMarker) Circularity() float64 {
	if m.Perimeter <= 0 {
		return 0
	}
	return 4 * math.Pi * m.Area / (m.Perimeter * m.Perimeter)
}

// IsDegenerate сообщает, что геометрию контура нельзя использовать
func (m RawMarker) IsDegenerate() bool {
	return m.Degenerate || m.Area <= 0
}
