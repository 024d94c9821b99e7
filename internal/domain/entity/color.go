package entity

// ColorTag цвет маркера
type ColorTag int

const (
	ColorUnknown ColorTag = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPink
	ColorGray
)

var colorNames = map[ColorTag]string{
	ColorUnknown: "unknown",
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorGreen:   "green",
	ColorBlue:    "blue",
	ColorPink:    "pink",
	ColorGray:    "gray",
}

func (c ColorTag) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return colorNames[ColorUnknown]
}

// ParseColorTag разбирает имя цвета из конфигурации
func ParseColorTag(name string) (ColorTag, bool) {
	for tag, n := range colorNames {
		if n == name {
			return tag, true
		}
	}
	return ColorUnknown, false
}
