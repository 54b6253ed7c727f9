// @title Habit Tracker API
// @version 1.0
// @description 习惯打卡后端服务
// @host localhost:8080
// @BasePath /api

package main

import (
	"fmt"
	"habit_tracker/internal/app"
	"habit_tracker/internal/config"
	"habit_tracker/pkg/database"
	"habit_tracker/pkg/logger"
	"os"

	"github.com/alecthomas/kong"
)

type Globals struct {
	Config string `help:"Directory containing config.yaml." type:"path" default:"configs"`
}

// ServeCmd 启动 HTTP 服务
type ServeCmd struct {
	Migrate bool `help:"Run database migrations on startup even in release mode."`
}

func (s *ServeCmd) Run(g *Globals) error {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ForceMigrate = s.Migrate

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	return application.Run()
}

// MigrateCmd 只执行数据库迁移，完成后退出
type MigrateCmd struct{}

func (m *MigrateCmd) Run(g *Globals) error {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Log.Info("Database migration finished")
	return nil
}

var CLI struct {
	Globals

	Version kong.VersionFlag
	Serve   ServeCmd   `cmd:"" help:"Start the HTTP server." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations and exit."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habit-tracker"),
		kong.Description("Habit tracking REST backend"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	if err := ctx.Run(&CLI.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
