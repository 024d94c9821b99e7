package rescue

import (
	"sort"
	"sync"

	"rescue-planner/internal/domain/entity"
)

// RescueRatio средняя оценка назначения на одного пострадавшего, 0 без пострадавших
func RescueRatio(casualties []entity.Casualty, total float64) float64 {
	if len(casualties) == 0 {
		return 0
	}
	return total / float64(len(casualties))
}

// Ranking накапливает коэффициенты снимков пакета. Только добавление.
type Ranking struct {
	mu      sync.Mutex
	entries []entity.RatioEntry
}

func NewRanking() *Ranking {
	return &Ranking{}
}

// Add добавляет коэффициент снимка
func (r *Ranking) Add(imageID string, ratio float64) {
	r.mu.Lock()
	r.entries = append(r.entries, entity.RatioEntry{ImageID: imageID, Ratio: ratio})
	r.mu.Unlock()
}

// Len возвращает число накопленных записей
func (r *Ranking) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sorted возвращает копию записей по убыванию коэффициента.
// Равные коэффициенты сохраняют порядок обработки.
func (r *Ranking) Sorted() []entity.RatioEntry {
	r.mu.Lock()
	out := make([]entity.RatioEntry, len(r.entries))
	copy(out, r.entries)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ratio > out[j].Ratio
	})
	return out
}
