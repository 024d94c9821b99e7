package entity

// ShapeKind форма маркера
type ShapeKind int

const (
	ShapeDefault  ShapeKind = iota // нераспознанная форма
	ShapeTriangle                  // треугольник
	ShapeSquare                    // квадрат
	ShapeCircle                    // круг (площадка)
	ShapeStar                      // звезда
)

var shapeNames = map[ShapeKind]string{
	ShapeDefault:  "default",
	ShapeTriangle: "triangle",
	ShapeSquare:   "square",
	ShapeCircle:   "circle",
	ShapeStar:     "star",
}

func (s ShapeKind) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return shapeNames[ShapeDefault]
}

// ParseShapeKind разбирает имя формы из конфигурации
func ParseShapeKind(name string) (ShapeKind, bool) {
	for kind, n := range shapeNames {
		if n == name {
			return kind, true
		}
	}
	return ShapeDefault, false
}

// ShapeFromCorners определяет форму по числу вершин аппроксимированного контура.
// Всё, что не треугольник, квадрат или круг, считается звездой.
func ShapeFromCorners(corners int) ShapeKind {
	switch {
	case corners == 3:
		return ShapeTriangle
	case corners == 4:
		return ShapeSquare
	case corners >= 6 && corners <= 8:
		return ShapeCircle
	default:
		return ShapeStar
	}
}
