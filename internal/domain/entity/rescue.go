package entity

// NoPad значение AssignedPad у пострадавшего без площадки
const NoPad = -1

// Casualty пострадавший, ожидающий эвакуации
type Casualty struct {
	Position      Point
	Shape         ShapeKind
	Color         ColorTag
	ShapePriority int // приоритет по форме
	ColorPriority int // приоритет по цвету
	TotalScore    int // ShapePriority × ColorPriority
	AssignedPad   int // индекс площадки или NoPad
}

// IsAssigned сообщает, назначена ли площадка
func (c Casualty) IsAssigned() bool {
	return c.AssignedPad != NoPad
}

// RescuePad площадка эвакуации с ограниченной вместимостью
type RescuePad struct {
	Position      Point
	Color         ColorTag
	Capacity      int
	AssignedCount int
}

// HasRoom сообщает, можно ли назначить на площадку ещё одного пострадавшего
func (p RescuePad) HasRoom() bool {
	return p.AssignedCount < p.Capacity
}

// Remaining возвращает число свободных мест
func (p RescuePad) Remaining() int {
	if p.AssignedCount >= p.Capacity {
		return 0
	}
	return p.Capacity - p.AssignedCount
}

// MarkerKind тип распознанного маркера
type MarkerKind string

const (
	KindCasualty MarkerKind = "casualty"
	KindPad      MarkerKind = "pad"
)

// Marker результат классификации: заполнено ровно одно из полей
type Marker struct {
	Casualty *Casualty
	Pad      *RescuePad
}

// Kind возвращает тип маркера
func (m Marker) Kind() MarkerKind {
	if m.Pad != nil {
		return KindPad
	}
	return KindCasualty
}
