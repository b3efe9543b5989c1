package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"thermo-agent/config"
	"thermo-agent/internal/api/rest"
	"thermo-agent/internal/api/telegram"
	"thermo-agent/internal/container"
)

var (
	dataDir string
	minTemp float64
	maxTemp float64
	outFile string
)

var rootCmd = &cobra.Command{
	Use:   "thermo",
	Short: "Термографический анализ нагрузки на ноги",
	// Ошибки печатаем сами в main
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API и Telegram-бот (если задан TELEGRAM_TOKEN)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c := container.New(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		server := rest.NewServer(c.Analyzer, c.Sessions, c.Renderer, rest.Options{
			Addr:        cfg.HTTPAddr,
			DataDir:     cfg.DataDir,
			FrontendDir: cfg.FrontendDir,
		})
		g.Go(func() error { return server.Run(ctx) })

		if cfg.TelegramToken != "" {
			bot, err := telegram.NewBot(cfg.TelegramToken, c.UserService, c.Analyzer)
			if err != nil {
				return fmt.Errorf("create bot: %w", err)
			}
			log.Println("Bot is running...")
			g.Go(func() error { return bot.Run(ctx) })
		}

		return g.Wait()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <session>",
	Short: "Анализ сессии, отчёт в формате JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c := container.New(cfg)

		report, err := c.Analyzer.AnalyzeSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		out := cfg.ReportFile
		if cmd.Flags().Changed("out") {
			out = outFile
		}
		if out != "" {
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			log.Printf("Report saved to %s", out)
		}
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Список сессий в каталоге данных",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sessions, err := container.New(cfg).Sessions.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range sessions {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", config.DefaultDataDir, "каталог с сессиями")
	pf.Float64Var(&minTemp, "min-temp", config.DefaultMinSkinTemp, "нижняя граница температуры кожи, °C")
	pf.Float64Var(&maxTemp, "max-temp", config.DefaultMaxSkinTemp, "верхняя граница температуры кожи, °C")

	analyzeCmd.Flags().StringVarP(&outFile, "out", "o", "", "файл для сохранения отчёта")

	rootCmd.AddCommand(serveCmd, analyzeCmd, sessionsCmd)
}

// loadConfig читает окружение, флаги командной строки имеют приоритет.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("min-temp") {
		cfg.MinSkinTemp = minTemp
	}
	if flags.Changed("max-temp") {
		cfg.MaxSkinTemp = maxTemp
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
