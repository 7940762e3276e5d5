package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathsprint/internal/app"
	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/logger"
	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/quiz"
)

// deps are the long-lived objects shared by every command that plays.
type deps struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *quiz.Engine
}

// loadDeps reads configuration from the command's flags, builds the logger
// and starts an engine at the configured difficulty.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	engine := newEngine(cfg)
	log.Info("engine ready",
		zap.Stringer("difficulty", engine.Difficulty()),
		zap.Uint64("seed", cfg.Seed),
	)

	return &deps{cfg: cfg, log: log, engine: engine}, nil
}

// loadConfig reads configuration using the command's --config and bound
// flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newEngine builds an engine seeded from cfg; seed 0 uses the clock.
func newEngine(cfg *config.Config) *quiz.Engine {
	var src problemgen.Source
	if cfg.Seed != 0 {
		src = problemgen.NewSeededSource(cfg.Seed)
	}
	return quiz.NewEngine(quiz.Config{
		Difficulty: cfg.Difficulty(),
		Generator:  problemgen.NewRandomGenerator(src),
	})
}

// runApp launches the terminal UI.
func runApp(cmd *cobra.Command, startInQuiz bool) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = d.log.Sync() }()

	return app.Run(app.Options{
		Engine:      d.engine,
		Logger:      d.log,
		StartInQuiz: startInQuiz,
	})
}
