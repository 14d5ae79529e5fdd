package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/todolabs/rocketd/internal/activity"
	"github.com/todolabs/rocketd/internal/config"
	"github.com/todolabs/rocketd/internal/logger"
	"github.com/todolabs/rocketd/internal/routetable"
	"github.com/todolabs/rocketd/internal/server"
	"github.com/todolabs/rocketd/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rocketd HTTP server",
	Long: `Start the HTTP server answering the built-in routes.

Every route returns a fixed JSON string, so GET / answers
"Rocket server is running" and GET /todo answers "Todo is working".
Run 'rocketd routes' for the full table.

Examples:
  rocketd serve                    # Listen on default port 8000
  rocketd serve --port 3000        # Listen on a custom port
  rocketd serve --log-level debug  # Log every request`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveHost       string
	servePort       int
	serveLogLevel   string
	serveJSONLogs   bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to config file (default: ./"+config.FileName+")")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}
	applyServeFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New()
	log.SetLevel(level)
	log.SetJSON(cfg.Log.JSON)

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = cfg.Server.Addr()
	srvCfg.Mode = cfg.Server.Mode
	srvCfg.Logger = log
	if cfg.Metrics.Enabled {
		srvCfg.MetricsPath = cfg.Metrics.Path
	} else {
		srvCfg.MetricsPath = ""
	}

	if cfg.Activity.Enabled {
		rec, err := activity.Dial(cmd.Context(), cfg.Activity.RedisAddr, cfg.Activity.Stream, cfg.Activity.MaxEntries)
		if err != nil {
			return err
		}
		srvCfg.Recorder = rec
	}

	srv, err := server.New(srvCfg, routetable.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		fmt.Printf("%s Shutting down...\n", ui.StyleYellow.Render("⚠️"))
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error("shutdown: %v", err)
		}
	}()

	printServeBanner(cfg)

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	fmt.Printf("%s Server stopped\n", ui.StyleGreen.Render("✓"))
	return nil
}

// loadServeConfig reads the config named by --config, or falls back to
// ./rocketd.yaml and then to defaults.
func loadServeConfig() (*config.Config, error) {
	if serveConfigPath != "" {
		return config.Load(serveConfigPath)
	}
	return config.LoadOrDefault(), nil
}

// applyServeFlags lays explicit flags over the loaded config
func applyServeFlags(cfg *config.Config) {
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	if serveJSONLogs {
		cfg.Log.JSON = true
	}
}

func printServeBanner(cfg *config.Config) {
	fmt.Printf("%s rocketd starting on port %d\n", ui.StyleCyan.Render("🚀"), cfg.Server.Port)
	fmt.Println()
	fmt.Printf("  %s http://localhost:%d/\n", ui.StyleDim.Render("Root:"), cfg.Server.Port)
	fmt.Printf("  %s http://localhost:%d/todo\n", ui.StyleDim.Render("Todo:"), cfg.Server.Port)
	if cfg.Metrics.Enabled {
		fmt.Printf("  %s http://localhost:%d%s\n", ui.StyleDim.Render("Metrics:"), cfg.Server.Port, cfg.Metrics.Path)
	}
	if cfg.Activity.Enabled {
		fmt.Printf("  %s %s @ %s\n", ui.StyleDim.Render("Activity:"), cfg.Activity.Stream, cfg.Activity.RedisAddr)
	}
	fmt.Println()
	fmt.Println(ui.Divider())
	fmt.Println(ui.StyleDim.Render("Press Ctrl+C to stop"))
	fmt.Println()
}
