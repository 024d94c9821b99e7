package port

import (
	"context"
	"errors"

	"rescue-planner/internal/domain/entity"
)

// ErrReportNotFound отчёт отсутствует в хранилище
var ErrReportNotFound = errors.New("report not found")

// ReportRepository интерфейс хранилища отчётов по пакетам
type ReportRepository interface {
	// Save сохраняет отчёт целиком
	Save(ctx context.Context, report *entity.BatchReport) error

	// Get возвращает отчёт по ID
	Get(ctx context.Context, id string) (*entity.BatchReport, error)

	// Latest возвращает последний сохранённый отчёт
	Latest(ctx context.Context) (*entity.BatchReport, error)
}
