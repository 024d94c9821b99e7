package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rescue-planner/config"
	"rescue-planner/internal/container"
	"rescue-planner/internal/domain/port"
	"rescue-planner/internal/domain/rescue"
	"rescue-planner/internal/infrastructure/storage"
	"rescue-planner/internal/infrastructure/vision"
	"rescue-planner/internal/logging"
)

// Version версия приложения
const Version = "0.1.0"

var (
	cfg *config.Config
	log zerolog.Logger

	// Флаги перекрывают значения из окружения
	flagLogLevel string
	flagTables   string
	flagMinArea  float64
	flagDB       string
)

var rootCmd = &cobra.Command{
	Use:           "rescue-planner",
	Short:         "Casualty-to-rescue-pad planning for aerial survey images",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		if flags.Changed("tables") {
			cfg.TablesPath = flagTables
		}
		if flags.Changed("min-area") {
			cfg.MinArea = flagMinArea
		}
		if flags.Changed("db") {
			cfg.ReportDB = flagDB
		}

		log = logging.New(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagTables, "tables", "", "YAML file with priority, capacity and color range tables")
	pf.Float64Var(&flagMinArea, "min-area", 150, "Minimum contour area in pixels")
	pf.StringVar(&flagDB, "db", "", "SQLite file for batch reports (default: in memory)")
}

// buildContainer собирает сервисы приложения по конфигурации.
// closeFn закрывает хранилище отчётов.
func buildContainer() (*container.Container, func(), error) {
	tables := rescue.DefaultTables()
	if cfg.TablesPath != "" {
		var err error
		tables, err = rescue.LoadTables(cfg.TablesPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.TablesPath).Msg("rule tables loaded")
	}

	var reports port.ReportRepository = storage.NewMemoryReportRepository()
	closeFn := func() {}
	if cfg.ReportDB != "" {
		repo, err := storage.NewSQLiteReportRepository(cfg.ReportDB)
		if err != nil {
			return nil, nil, err
		}
		reports = repo
		closeFn = func() {
			if err := repo.Close(); err != nil {
				log.Warn().Err(err).Msg("close report db")
			}
		}
	}

	extractor := vision.NewGoCVExtractor(cfg.MinArea, log)
	renderer := vision.NewGoCVRenderer()

	// Создаём хранилище операторов бота
	userRepo := storage.NewMemoryUserRepository()

	return container.New(userRepo, reports, extractor, renderer, tables, log), closeFn, nil
}
