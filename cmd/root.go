package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/config"
	"github.com/yanivps/green-invoice/filter"
	"github.com/yanivps/green-invoice/greeninvoice"
	"github.com/yanivps/green-invoice/output"
)

// skipConfig marks commands that run without a config file or API session
const skipConfig = "skip-config"

var (
	cfgFile    string
	envFlag    string
	outputFlag string
	cfg        *config.Config
	logger     zerolog.Logger
	printer    *output.Printer
	filters    *filter.Manager
	evaluator  *filter.Evaluator
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "greeninvoice",
	Short: "Manage Green Invoice clients and documents from the command line",
	Long: `greeninvoice is a CLI for the Green Invoice (Morning) invoicing API.
It searches, creates, updates and deletes clients, and issues, searches
and downloads accounting documents, in the live or sandbox environment.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "API environment: live or sandbox (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json or yaml")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and the default API session
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" || cmd.Name() == "help" {
		return nil
	}

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	env := cfg.GreenInvoice.Environment
	if cmd.Flags().Changed("env") {
		env = envFlag
	}
	environment, err := greeninvoice.ParseEnvironment(env)
	if err != nil {
		return err
	}

	if _, err := greeninvoice.Configure(environment, cfg.GreenInvoice.APIKeyID, cfg.GreenInvoice.APIKeySecret, sessionOptions()...); err != nil {
		return fmt.Errorf("failed to create Green Invoice session: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}
	evaluator = filter.NewEvaluator(filter.WithLogger(logger))

	printer = output.NewPrinter(cmd.OutOrStdout(), format, cfg.Safety.ShowDetails)

	logger.Debug().
		Str("environment", string(environment)).
		Str("output", string(format)).
		Msg("Initialized")

	return nil
}

// sessionOptions maps configuration onto session options
func sessionOptions() []greeninvoice.Option {
	// Request and response lines are info level in the session; keep them
	// out of normal CLI output unless debugging.
	sessionLogger := logger.With().Str("component", "greeninvoice").Logger()
	if lvl := logger.GetLevel(); lvl > zerolog.DebugLevel && lvl < zerolog.WarnLevel {
		sessionLogger = sessionLogger.Level(zerolog.WarnLevel)
	}

	opts := []greeninvoice.Option{
		greeninvoice.WithLogger(sessionLogger),
		greeninvoice.WithTimeout(cfg.GreenInvoice.Timeout),
	}
	if cfg.GreenInvoice.BaseURL != "" {
		opts = append(opts, greeninvoice.WithBaseURL(cfg.GreenInvoice.BaseURL))
	}
	if cfg.GreenInvoice.UserAgent != "" {
		opts = append(opts, greeninvoice.WithUserAgent(cfg.GreenInvoice.UserAgent))
	}
	return opts
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is not a terminal
	fd := os.Stderr.Fd()
	isTerminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
