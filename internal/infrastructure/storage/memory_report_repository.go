package storage

import (
	"context"
	"sync"

	"rescue-planner/internal/domain/entity"
	"rescue-planner/internal/domain/port"
)

// MemoryReportRepository in-memory хранилище отчётов
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]*entity.BatchReport
}

// NewMemoryReportRepository создаёт новое in-memory хранилище отчётов
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[string]*entity.BatchReport),
	}
}

// Save сохраняет копию отчёта
func (r *MemoryReportRepository) Save(ctx context.Context, report *entity.BatchReport) error {
	cp := copyReport(report)

	r.mu.Lock()
	r.reports[report.ID] = cp
	r.mu.Unlock()

	return nil
}

// Get возвращает отчёт по ID
func (r *MemoryReportRepository) Get(ctx context.Context, id string) (*entity.BatchReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, port.ErrReportNotFound
	}
	return copyReport(report), nil
}

// Latest возвращает отчёт с самым поздним CreatedAt
func (r *MemoryReportRepository) Latest(ctx context.Context) (*entity.BatchReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *entity.BatchReport
	for _, report := range r.reports {
		if latest == nil || report.CreatedAt.After(latest.CreatedAt) ||
			(report.CreatedAt.Equal(latest.CreatedAt) && report.ID > latest.ID) {
			latest = report
		}
	}
	if latest == nil {
		return nil, port.ErrReportNotFound
	}
	return copyReport(latest), nil
}

func copyReport(report *entity.BatchReport) *entity.BatchReport {
	cp := *report
	cp.Entries = make([]entity.RatioEntry, len(report.Entries))
	copy(cp.Entries, report.Entries)
	return &cp
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
