package rescue

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rescue-planner/internal/domain/entity"
)

// ColorRange замкнутый диапазон HSV для одного именованного цвета
type ColorRange struct {
	Color entity.ColorTag
	Low   entity.HSV
	High  entity.HSV
}

// Contains проверяет попадание цвета в диапазон по всем трём каналам
func (r ColorRange) Contains(c entity.HSV) bool {
	return r.Low.H <= c.H && c.H <= r.High.H &&
		r.Low.S <= c.S && c.S <= r.High.S &&
		r.Low.V <= c.V && c.V <= r.High.V
}

// Tables таблицы приоритетов, вместимости и цветовых диапазонов.
// Диапазоны проверяются в порядке среза, побеждает первый совпавший.
type Tables struct {
	ShapePriority map[entity.ShapeKind]int
	ColorPriority map[entity.ColorTag]int
	PadCapacity   map[entity.ColorTag]int
	ColorRanges   []ColorRange
}

// DefaultTables возвращает новую копию стандартных таблиц
func DefaultTables() *Tables {
	return &Tables{
		ShapePriority: map[entity.ShapeKind]int{
			entity.ShapeStar:     3,
			entity.ShapeTriangle: 2,
			entity.ShapeSquare:   1,
		},
		ColorPriority: map[entity.ColorTag]int{
			entity.ColorRed:    3,
			entity.ColorYellow: 2,
			entity.ColorGreen:  1,
		},
		PadCapacity: map[entity.ColorTag]int{
			entity.ColorBlue: 4,
			entity.ColorPink: 3,
			entity.ColorGray: 2,
		},
		ColorRanges: []ColorRange{
			{Color: entity.ColorRed, Low: entity.HSV{H: 0, S: 60, V: 240}, High: entity.HSV{H: 5, S: 102, V: 255}},
			{Color: entity.ColorYellow, Low: entity.HSV{H: 21, S: 163, V: 252}, High: entity.HSV{H: 25, S: 180, V: 255}},
			{Color: entity.ColorGreen, Low: entity.HSV{H: 40, S: 132, V: 239}, High: entity.HSV{H: 45, S: 138, V: 255}},
			{Color: entity.ColorBlue, Low: entity.HSV{H: 100, S: 70, V: 252}, High: entity.HSV{H: 120, S: 125, V: 255}},
			{Color: entity.ColorPink, Low: entity.HSV{H: 140, S: 60, V: 252}, High: entity.HSV{H: 151, S: 100, V: 255}},
			{Color: entity.ColorGray, Low: entity.HSV{H: 0, S: 0, V: 219}, High: entity.HSV{H: 1, S: 5, V: 225}},
		},
	}
}

// Validate проверяет, что таблицы не содержат отрицательных значений и пустых диапазонов
func (t *Tables) Validate() error {
	for shape, p := range t.ShapePriority {
		if p < 0 {
			return fmt.Errorf("negative priority %d for shape %s", p, shape)
		}
	}
	for color, p := range t.ColorPriority {
		if p < 0 {
			return fmt.Errorf("negative priority %d for color %s", p, color)
		}
	}
	for color, c := range t.PadCapacity {
		if c < 0 {
			return fmt.Errorf("negative capacity %d for color %s", c, color)
		}
	}
	for _, r := range t.ColorRanges {
		if r.Low.H > r.High.H || r.Low.S > r.High.S || r.Low.V > r.High.V {
			return fmt.Errorf("empty range for color %s", r.Color)
		}
	}
	return nil
}

// tablesFile формат YAML-файла таблиц
type tablesFile struct {
	ShapePriority map[string]int   `yaml:"shape_priority"`
	ColorPriority map[string]int   `yaml:"color_priority"`
	PadCapacity   map[string]int   `yaml:"pad_capacity"`
	ColorRanges   []colorRangeFile `yaml:"color_ranges"`
}

type colorRangeFile struct {
	Color string   `yaml:"color"`
	Low   [3]uint8 `yaml:"low"`
	High  [3]uint8 `yaml:"high"`
}

// LoadTables читает таблицы из YAML. Отсутствующие секции берутся из DefaultTables.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	return ParseTables(data)
}

// ParseTables разбирает таблицы из YAML-документа
func ParseTables(data []byte) (*Tables, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}

	t := DefaultTables()
	if f.ShapePriority != nil {
		t.ShapePriority = make(map[entity.ShapeKind]int, len(f.ShapePriority))
		for name, p := range f.ShapePriority {
			shape, ok := entity.ParseShapeKind(name)
			if !ok {
				return nil, fmt.Errorf("unknown shape %q", name)
			}
			t.ShapePriority[shape] = p
		}
	}

	var err error
	if f.ColorPriority != nil {
		if t.ColorPriority, err = colorMap(f.ColorPriority); err != nil {
			return nil, err
		}
	}
	if f.PadCapacity != nil {
		if t.PadCapacity, err = colorMap(f.PadCapacity); err != nil {
			return nil, err
		}
	}

	if f.ColorRanges != nil {
		t.ColorRanges = make([]ColorRange, 0, len(f.ColorRanges))
		for _, r := range f.ColorRanges {
			color, ok := entity.ParseColorTag(r.Color)
			if !ok || color == entity.ColorUnknown {
				return nil, fmt.Errorf("unknown color %q", r.Color)
			}
			t.ColorRanges = append(t.ColorRanges, ColorRange{
				Color: color,
				Low:   entity.HSV{H: r.Low[0], S: r.Low[1], V: r.Low[2]},
				High:  entity.HSV{H: r.High[0], S: r.High[1], V: r.High[2]},
			})
		}
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid tables"), err)
	}
	return t, nil
}

func colorMap(in map[string]int) (map[entity.ColorTag]int, error) {
	out := make(map[entity.ColorTag]int, len(in))
	for name, v := range in {
		color, ok := entity.ParseColorTag(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		out[color] = v
	}
	return out, nil
}
