package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rescue-planner/internal/domain/entity"
	"rescue-planner/internal/domain/port"
)

// reportRow строка таблицы отчётов
type reportRow struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Entries   []ratioRow `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

func (reportRow) TableName() string { return "batch_reports" }

// ratioRow коэффициент одного снимка; Seq задаёт порядок в рейтинге
type ratioRow struct {
	ID       uint   `gorm:"primaryKey"`
	ReportID string `gorm:"index"`
	Seq      int
	ImageID  string
	Ratio    float64
}

func (ratioRow) TableName() string { return "batch_ratios" }

// SQLiteReportRepository хранилище отчётов в SQLite через gorm
type SQLiteReportRepository struct {
	db *gorm.DB
}

// NewSQLiteReportRepository открывает файл базы и создаёт схему
func NewSQLiteReportRepository(path string) (*SQLiteReportRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if err := db.AutoMigrate(&reportRow{}, &ratioRow{}); err != nil {
		return nil, fmt.Errorf("migrate report schema: %w", err)
	}

	return &SQLiteReportRepository{db: db}, nil
}

// Close закрывает соединение с базой
func (r *SQLiteReportRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save сохраняет отчёт, перезаписывая строки с тем же ID
func (r *SQLiteReportRepository) Save(ctx context.Context, report *entity.BatchReport) error {
	row := reportRow{ID: report.ID, CreatedAt: report.CreatedAt}
	for i, e := range report.Entries {
		row.Entries = append(row.Entries, ratioRow{ReportID: report.ID, Seq: i, ImageID: e.ImageID, Ratio: e.Ratio})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", report.ID).Delete(&ratioRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", report.ID).Delete(&reportRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
}

// Get возвращает отчёт по ID
func (r *SQLiteReportRepository) Get(ctx context.Context, id string) (*entity.BatchReport, error) {
	var row reportRow
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&row, "id = ?", id).Error
	return toReport(row, err)
}

// Latest возвращает отчёт с наибольшим временем создания
func (r *SQLiteReportRepository) Latest(ctx context.Context) (*entity.BatchReport, error) {
	var row reportRow
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("created_at DESC").
		Order("id DESC").
		First(&row).Error
	return toReport(row, err)
}

func toReport(row reportRow, err error) (*entity.BatchReport, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, port.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	report := &entity.BatchReport{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		Entries:   make([]entity.RatioEntry, 0, len(row.Entries)),
	}
	for _, e := range row.Entries {
		report.Entries = append(report.Entries, entity.RatioEntry{ImageID: e.ImageID, Ratio: e.Ratio})
	}
	return report, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*SQLiteReportRepository)(nil)
