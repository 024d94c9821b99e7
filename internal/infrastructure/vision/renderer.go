//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strconv"

	"gocv.io/x/gocv"

	"rescue-planner/internal/domain/entity"
)

var (
	outlineColor = color.RGBA{A: 255}
	scoreColor   = color.RGBA{R: 255, B: 255, A: 255}
	lineColor    = color.RGBA{R: 255, A: 255}
	landDisplay  = gocv.NewScalar(19, 69, 139, 0) // BGR, коричневый
	oceanDisplay = gocv.NewScalar(139, 0, 0, 0)   // BGR, тёмно-синий
)

type GoCVRenderer struct {
	Quality int
}

// NewGoCVRenderer создаёт отрисовщик с качеством JPEG 90.
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{Quality: 90}
}

// Render перекрашивает сушу и море, подписывает оценки пострадавших
// и на второй картинке проводит линии до назначенных площадок.
func (r *GoCVRenderer) Render(imageData []byte, result *entity.ImageResult) (*entity.RenderedImages, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)

	display := mat.Clone()
	defer display.Close()
	paintMask(&display, hsv, landRange, landDisplay)
	paintMask(&display, hsv, oceanRange, oceanDisplay)

	for _, c := range result.Casualties {
		org := image.Pt(c.Position.X, c.Position.Y)
		text := strconv.Itoa(c.TotalScore)
		gocv.PutText(&display, text, org, gocv.FontHersheyComplex, 0.5, outlineColor, 3)
		gocv.PutText(&display, text, org, gocv.FontHersheyComplex, 0.5, scoreColor, 2)
	}

	final := display.Clone()
	defer final.Close()
	for _, c := range result.Casualties {
		if !c.IsAssigned() || c.AssignedPad >= len(result.Pads) {
			continue
		}
		p := result.Pads[c.AssignedPad]
		gocv.Line(&final, image.Pt(c.Position.X, c.Position.Y), image.Pt(p.Position.X, p.Position.Y), lineColor, 2)
	}

	scored, err := r.encode(display)
	if err != nil {
		return nil, err
	}
	assigned, err := r.encode(final)
	if err != nil {
		return nil, err
	}
	return &entity.RenderedImages{Scored: scored, Assigned: assigned}, nil
}

// paintMask заливает цветом пиксели, попавшие в диапазон HSV.
func paintMask(dst *gocv.Mat, hsv gocv.Mat, rng hsvRange, fill gocv.Scalar) {
	mask := gocv.NewMat()
	defer mask.Close()
	low := gocv.NewScalar(float64(rng.Low.H), float64(rng.Low.S), float64(rng.Low.V), 0)
	high := gocv.NewScalar(float64(rng.High.H), float64(rng.High.S), float64(rng.High.V), 0)
	gocv.InRangeWithScalar(hsv, low, high, &mask)

	solid := gocv.NewMatWithSizeFromScalar(fill, dst.Rows(), dst.Cols(), gocv.MatTypeCV8UC3)
	defer solid.Close()
	solid.CopyToWithMask(dst, mask)
}

func (r *GoCVRenderer) encode(mat gocv.Mat) ([]byte, error) {
	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
