// Package cli implements the surveil command tree: administration of the
// exam-surveillance backend from the terminal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exd-tools/surveil-admin/internal/client"
	"github.com/exd-tools/surveil-admin/pkg/config"
	"github.com/exd-tools/surveil-admin/pkg/logger"
)

// App carries the shared dependencies of every command. Config and logger
// are loaded once; the API client is built lazily so commands that never
// touch the backend (stub serve) do not require one.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	apiClient *client.Client
}

// NewApp loads configuration and builds the logger.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &App{Config: cfg, Logger: log}, nil
}

// Client returns the API client, building it on first use.
func (a *App) Client() *client.Client {
	if a.apiClient == nil {
		a.apiClient = client.New(a.Config.API, a.Logger)
	}
	return a.apiClient
}

// RootCmd assembles the command tree.
func RootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "surveil",
		Short: "Administration tool for the exam-surveillance scheduler",
		Long: `surveil manages an exam-surveillance scheduling backend: sessions,
teachers, time slots, preferences, quotas and assignments, including the
validated exchange of surveillance duties between teachers.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.Config.API.BaseURL, "api", app.Config.API.BaseURL, "backend base URL")

	rootCmd.AddCommand(SessionsCmd(app))
	rootCmd.AddCommand(TeachersCmd(app))
	rootCmd.AddCommand(SlotsCmd(app))
	rootCmd.AddCommand(VoeuxCmd(app))
	rootCmd.AddCommand(QuotasCmd(app))
	rootCmd.AddCommand(AssignmentsCmd(app))
	rootCmd.AddCommand(OptimizeCmd(app))
	rootCmd.AddCommand(StatsCmd(app))
	rootCmd.AddCommand(ExportCmd(app))
	rootCmd.AddCommand(UploadCmd(app))
	rootCmd.AddCommand(StorageCmd(app))
	rootCmd.AddCommand(StubCmd(app))

	return rootCmd
}
