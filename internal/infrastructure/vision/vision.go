package vision

import (
	"errors"
	"image"

	"rescue-planner/internal/domain/entity"
)

// ErrVisionDisabled возвращается сборкой без тега gocv
var ErrVisionDisabled = errors.New("gocv build tag is not enabled")

// Стандартные пороги выделения контуров
const (
	DefaultBinaryThreshold = 150
	DefaultMinArea         = 150.0
	DefaultApproxEpsilon   = 0.03
)

// hsvRange диапазон HSV для масок суши и моря
type hsvRange struct {
	Low  entity.HSV
	High entity.HSV
}

var (
	landRange  = hsvRange{Low: entity.HSV{H: 55, S: 178, V: 127}, High: entity.HSV{H: 65, S: 230, V: 153}}
	oceanRange = hsvRange{Low: entity.HSV{H: 100, S: 153, V: 89}, High: entity.HSV{H: 115, S: 204, V: 115}}
)

// contourCentroid считает центр масс замкнутого контура по моментам m00, m10, m01.
// ok == false, если площадь контура нулевая.
func contourCentroid(points []image.Point) (entity.Point, bool) {
	n := len(points)
	if n < 3 {
		return entity.Point{}, false
	}

	var m00, m10, m01 float64
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		cross := float64(p.X*q.Y - q.X*p.Y)
		m00 += cross
		m10 += float64(p.X+q.X) * cross
		m01 += float64(p.Y+q.Y) * cross
	}
	m00 /= 2
	m10 /= 6
	m01 /= 6

	if m00 == 0 {
		return entity.Point{}, false
	}
	return entity.Point{X: int(m10 / m00), Y: int(m01 / m00)}, true
}

func inBounds(p entity.Point, cols, rows int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < cols && p.Y < rows
}
