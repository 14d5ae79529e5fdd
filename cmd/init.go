package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/todolabs/rocketd/internal/config"
	"github.com/todolabs/rocketd/internal/ui"
)

var (
	flagNonInteractive bool
	flagForce          bool
	flagInitPort       int
	flagInitMode       string
	flagInitMetrics    bool
	flagInitActivity   bool
	flagInitRedisAddr  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create rocketd.yaml with an interactive wizard",
	Long: `Create the rocketd configuration file with an interactive wizard.

The wizard asks for the listen port, the server mode, and whether to
expose Prometheus metrics and record request activity to Redis. The
answers are written to rocketd.yaml in the current directory.

For automation (CI/CD), use --no-interactive with flags.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&flagNonInteractive, "no-interactive", false, "Skip interactive prompts, use flags only")
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing "+config.FileName)
	initCmd.Flags().IntVar(&flagInitPort, "port", 8000, "Listen port")
	initCmd.Flags().StringVar(&flagInitMode, "mode", "release", "Server mode: release or debug")
	initCmd.Flags().BoolVar(&flagInitMetrics, "metrics", true, "Expose Prometheus metrics")
	initCmd.Flags().BoolVar(&flagInitActivity, "activity", false, "Record request activity to Redis")
	initCmd.Flags().StringVar(&flagInitRedisAddr, "redis-addr", "localhost:6379", "Redis address for the activity stream")
}

func runInit(cmd *cobra.Command, args []string) error {
	if fileExists(config.FileName) && !flagForce {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.FileName)
	}

	fmt.Print(ui.Header("🚀", "Welcome to rocketd"))
	fmt.Printf("%s\n\n", ui.StyleDim.Render("Static JSON route server"))

	cfg := config.Default()
	cfg.Server.Port = flagInitPort
	cfg.Server.Mode = flagInitMode
	cfg.Metrics.Enabled = flagInitMetrics
	cfg.Activity.Enabled = flagInitActivity
	cfg.Activity.RedisAddr = flagInitRedisAddr

	if !flagNonInteractive {
		if err := interactiveWizard(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(config.FileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}
	fmt.Print(ui.ProgressLine("Created "+config.FileName, "✓"))

	printInitSuccess(cfg)
	return nil
}

// interactiveWizard fills cfg from prompts, keeping flag values as defaults
func interactiveWizard(cfg *config.Config) error {
	fmt.Println("🌐 Server")
	portStr, err := ui.PromptDefault("  Port", strconv.Itoa(cfg.Server.Port))
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q", portStr)
	}
	cfg.Server.Port = port

	mode, err := ui.PromptSelect("  Mode", []string{"release", "debug"})
	if err != nil {
		return err
	}
	cfg.Server.Mode = mode
	fmt.Println()

	fmt.Println("📊 Observability")
	metricsOn, err := ui.PromptConfirm("  Expose Prometheus metrics?", cfg.Metrics.Enabled)
	if err != nil {
		return err
	}
	cfg.Metrics.Enabled = metricsOn

	activityOn, err := ui.PromptConfirm("  Record request activity to Redis?", cfg.Activity.Enabled)
	if err != nil {
		return err
	}
	cfg.Activity.Enabled = activityOn

	if activityOn {
		addr, err := ui.PromptDefault("  Redis address", cfg.Activity.RedisAddr)
		if err != nil {
			return err
		}
		cfg.Activity.RedisAddr = addr

		stream, err := ui.PromptDefault("  Stream name", cfg.Activity.Stream)
		if err != nil {
			return err
		}
		cfg.Activity.Stream = stream
	}
	fmt.Println()

	return nil
}

func printInitSuccess(cfg *config.Config) {
	summary := fmt.Sprintf("Server will listen on %s", cfg.Server.Addr())
	if cfg.Metrics.Enabled {
		summary += "\nMetrics exposed at " + cfg.Metrics.Path
	}
	if cfg.Activity.Enabled {
		summary += "\nActivity recorded to " + cfg.Activity.Stream
	}
	fmt.Print(ui.SuccessBox("Setup complete!", summary))

	steps := []ui.Step{
		{Command: "rocketd serve", Description: fmt.Sprintf("Start the server on port %d", cfg.Server.Port)},
		{Command: "rocketd routes", Description: "List the registered routes"},
		{Command: "rocketd config show", Description: "Review the configuration"},
	}
	fmt.Print(ui.NextSteps(steps))
}

func fileExists(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	_, err = os.Stat(absPath)
	return err == nil
}
