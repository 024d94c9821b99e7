package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"rescue-planner/internal/domain/entity"
	"rescue-planner/internal/domain/port"
	"rescue-planner/internal/domain/rescue"
)

// ProgressFunc вызывается после каждого снимка пакета
type ProgressFunc func(done, total int)

type SurveyService struct {
	extractor port.MarkerExtractor
	renderer  port.SurveyRenderer
	reports   port.ReportRepository
	tables    *rescue.Tables
	log       zerolog.Logger
	now       func() time.Time
}

// SurveyOutput содержит результат анализа снимка и картинки с разметкой.
type SurveyOutput struct {
	Result   *entity.ImageResult
	Rendered *entity.RenderedImages
}

// NewSurveyService создаёт сервис анализа снимков. renderer и reports могут быть nil.
func NewSurveyService(extractor port.MarkerExtractor, renderer port.SurveyRenderer, reports port.ReportRepository, tables *rescue.Tables, log zerolog.Logger) *SurveyService {
	if tables == nil {
		tables = rescue.DefaultTables()
	}
	return &SurveyService{
		extractor: extractor,
		renderer:  renderer,
		reports:   reports,
		tables:    tables,
		log:       log.With().Str("component", "survey").Logger(),
		now:       time.Now,
	}
}

// AnalyzeImage извлекает маркеры, назначает пострадавших и рисует результат.
func (s *SurveyService) AnalyzeImage(ctx context.Context, imageID string, data []byte) (*SurveyOutput, error) {
	if s.extractor == nil {
		return nil, errors.New("extractor is not configured")
	}

	raws, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extract markers from %s: %w", imageID, err)
	}

	result := rescue.Analyze(imageID, raws, s.tables)
	s.log.Debug().
		Str("image", imageID).
		Int("casualties", len(result.Casualties)).
		Int("pads", len(result.Pads)).
		Int("assigned", result.AssignedCount()).
		Float64("ratio", result.RescueRatio).
		Msg("image analyzed")

	out := &SurveyOutput{Result: result}
	if s.renderer != nil {
		rendered, err := s.renderer.Render(data, result)
		if err != nil {
			// Без картинок результат остаётся полезным.
			s.log.Warn().Err(err).Str("image", imageID).Msg("render failed")
		} else {
			out.Rendered = rendered
		}
	}
	return out, nil
}

// AnalyzeBatch обрабатывает снимки источника по порядку имён и строит рейтинг.
// Нечитаемые снимки пропускаются, пакет продолжается.
func (s *SurveyService) AnalyzeBatch(ctx context.Context, source port.ImageSource, sink port.OutputSink, progress ProgressFunc) (*entity.BatchReport, error) {
	refs, err := source.List(ctx)
	if err != nil {
		return nil, err
	}

	ranking := rescue.NewRanking()
	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.analyzeRef(ctx, source, sink, ref, ranking)
		if progress != nil {
			progress(i+1, len(refs))
		}
	}

	createdAt := s.now()
	report := &entity.BatchReport{
		ID:        createdAt.UTC().Format("20060102T150405.000000000Z"),
		CreatedAt: createdAt,
		Entries:   ranking.Sorted(),
	}
	s.log.Info().
		Str("report", report.ID).
		Int("images", len(refs)).
		Int("ranked", len(report.Entries)).
		Msg("batch analyzed")

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}
	return report, nil
}

func (s *SurveyService) analyzeRef(ctx context.Context, source port.ImageSource, sink port.OutputSink, ref port.ImageRef, ranking *rescue.Ranking) {
	data, err := source.Read(ctx, ref)
	if err != nil {
		s.log.Warn().Err(err).Str("image", ref.Name).Msg("skipping unreadable image")
		return
	}

	out, err := s.AnalyzeImage(ctx, ref.Name, data)
	if err != nil {
		s.log.Warn().Err(err).Str("image", ref.Name).Msg("skipping image")
		return
	}
	ranking.Add(ref.Name, out.Result.RescueRatio)

	if sink == nil || out.Rendered == nil {
		return
	}
	if err := sink.Write(ctx, port.OutputScored, ref.Name, out.Rendered.Scored); err != nil {
		s.log.Warn().Err(err).Str("image", ref.Name).Msg("write scored image")
	}
	if err := sink.Write(ctx, port.OutputAssigned, ref.Name, out.Rendered.Assigned); err != nil {
		s.log.Warn().Err(err).Str("image", ref.Name).Msg("write assigned image")
	}
}

// LatestReport возвращает последний сохранённый рейтинг
func (s *SurveyService) LatestReport(ctx context.Context) (*entity.BatchReport, error) {
	if s.reports == nil {
		return nil, port.ErrReportNotFound
	}
	return s.reports.Latest(ctx)
}
