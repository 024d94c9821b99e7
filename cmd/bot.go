package main

import (
	"errors"

	"github.com/spf13/cobra"

	telegram "rescue-planner/internal/api"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot that analyzes survey photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.TelegramToken == "" {
			return errors.New("TELEGRAM_TOKEN is required")
		}

		app, closeFn, err := buildContainer()
		if err != nil {
			return err
		}
		defer closeFn()

		bot, err := telegram.NewBot(cfg.TelegramToken, app, log)
		if err != nil {
			return err
		}

		log.Info().Msg("bot is running")
		return bot.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
