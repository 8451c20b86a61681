package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"reqsmith/internal/config"
	"reqsmith/internal/llm"
	"reqsmith/internal/logging"
	"reqsmith/internal/pipeline"
	"reqsmith/internal/plugins"
	"reqsmith/internal/registry"
	"reqsmith/internal/server"
	"reqsmith/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiKey     string

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reqsmith",
	Short: "reqsmith - domain-aware requirements pipeline",
	Long: `reqsmith detects the business domain of a project document, extracts
structured requirements through pluggable domain handlers, breaks them
into tasks, and issues a deterministic approval verdict.

Handlers are data: YAML manifests interpreted by a generic rule engine.
When no registered handler matches a document well enough, a new
manifest can be synthesized by an LLM, validated, and registered
without restarting the service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if apiKey != "" {
			cfg.LLM.APIKey = apiKey
		}
		if verbose {
			cfg.Logging.DebugMode = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return logging.Initialize(logging.Options{
			Dir:        cfg.Logging.Dir,
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			Categories: cfg.Logging.Categories,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// serveCmd runs the HTTP service
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP processing service",
	Long: `Starts the HTTP service:
  POST /api/process - Process a document through the pipeline
  GET  /api/status  - Registry and run-history status
  GET  /health      - Health check

Handler manifests in the plugins directory are loaded at startup and,
when watching is enabled, hot-reloaded on change.`,
	RunE: runServe,
}

// detectCmd runs detection only
var detectCmd = &cobra.Command{
	Use:   "detect [document-file]",
	Short: "Detect the domain of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

// processCmd runs the full pipeline once
var processCmd = &cobra.Command{
	Use:   "process [document-file]",
	Short: "Run a document through the full pipeline",
	Long: `Runs analyze, requirements, tasks, and approval stages on one
document and prints the result. With --json the full run result is
printed; otherwise the approval document.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

// pluginsCmd groups handler manifest operations
var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Inspect and create handler manifests",
}

var pluginsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered domain handlers",
	RunE:  runPluginsList,
}

var pluginsCreateCmd = &cobra.Command{
	Use:   "create [document-file]",
	Short: "Synthesize a handler manifest for a document's domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runPluginsCreate,
}

var (
	processJSON   bool
	serveNoCreate bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "reqsmith.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Anthropic API key (or set ANTHROPIC_API_KEY env)")

	processCmd.Flags().BoolVar(&processJSON, "json", false, "Print the full run result as JSON")
	serveCmd.Flags().BoolVar(&serveNoCreate, "no-create", false, "Disable LLM handler generation")

	pluginsCmd.AddCommand(pluginsListCmd)
	pluginsCmd.AddCommand(pluginsCreateCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(pluginsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildRegistry populates the registry with builtins and any persisted
// manifests.
func buildRegistry() *registry.Registry {
	r := registry.NewWithBuiltins()
	logging.Boot("registry ready with %d builtin domains", r.Count())
	if cfg.Plugins.Dir != "" {
		if n, err := plugins.RegisterDir(r, cfg.Plugins.Dir); err != nil {
			logger.Warn("manifest load failed", zap.Error(err))
		} else if n > 0 {
			logger.Info("loaded handler manifests", zap.Int("count", n))
		}
	}
	return r
}

// buildCreator returns nil when generation is unavailable, which
// degrades the pipeline to detection-only handler selection.
func buildCreator(r *registry.Registry) *plugins.Creator {
	if cfg.LLM.APIKey == "" {
		logger.Info("no API key configured, handler generation disabled")
		return nil
	}
	client := llm.NewAnthropicClientWithConfig(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.GetLLMTimeout(),
	})
	return plugins.NewCreator(r, client, plugins.Options{
		ConfidenceThreshold: cfg.Plugins.ConfidenceThreshold,
		SpecsDir:            cfg.Plugins.Dir,
		OnCollision:         cfg.Plugins.OnCollision,
		SummaryCount:        cfg.Plugins.SummaryCount,
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	r := buildRegistry()

	var creator *plugins.Creator
	if !serveNoCreate {
		creator = buildCreator(r)
	}
	p := pipeline.New(r, creator)

	runs, err := store.Open(cfg.Store.DatabasePath)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer runs.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.New(r, p, runs).Router(),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var watcher *plugins.Watcher
	if cfg.Plugins.Watch && cfg.Plugins.Dir != "" {
		watcher, err = plugins.NewWatcher(cfg.Plugins.Dir, r)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		if err := watcher.Start(gctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	g.Go(func() error {
		logger.Info("serving", zap.String("addr", cfg.Server.Addr), zap.Int("domains", r.Count()))
		logging.Server("serving on %s with %d domains", cfg.Server.Addr, r.Count())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ServerError("listen: %v", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		logger.Info("shutting down")
		logging.Server("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runDetect(cmd *cobra.Command, args []string) error {
	document, err := readDocument(args[0])
	if err != nil {
		return err
	}

	r := buildRegistry()
	det := r.Detect(document)
	if det.Domain == registry.NoDomain {
		fmt.Println("No registered domain matched.")
		return nil
	}

	fmt.Printf("Domain:     %s\n", det.Domain)
	fmt.Printf("Confidence: %.3f\n", det.Confidence)
	if det.RunnerUp != "" {
		fmt.Printf("Runner-up:  %s (%.3f)\n", det.RunnerUp, det.RunnerUpConfidence)
	}
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	document, err := readDocument(args[0])
	if err != nil {
		return err
	}

	r := buildRegistry()
	p := pipeline.New(r, buildCreator(r))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetLLMTimeout()+30*time.Second)
	defer cancel()

	result, err := p.Run(ctx, document)
	if err != nil {
		return err
	}

	if processJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	xmlOut, err := result.ApprovalXML()
	if err != nil {
		return err
	}
	fmt.Println(xmlOut)
	return nil
}

func runPluginsList(cmd *cobra.Command, args []string) error {
	r := buildRegistry()
	names := r.Domains()
	if len(names) == 0 {
		fmt.Println("No handlers registered.")
		return nil
	}

	fmt.Printf("%d registered handlers:\n", len(names))
	for _, s := range r.Summaries(len(names)) {
		fmt.Println("  " + s)
	}
	return nil
}

func runPluginsCreate(cmd *cobra.Command, args []string) error {
	document, err := readDocument(args[0])
	if err != nil {
		return err
	}

	r := buildRegistry()
	creator := buildCreator(r)
	if creator == nil {
		return fmt.Errorf("handler generation requires an API key")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetLLMTimeout())
	defer cancel()

	rec := creator.EnsureHandler(ctx, document)
	switch rec.Action {
	case plugins.ActionReused:
		fmt.Printf("Existing handler %q already covers this document (confidence %.3f).\n", rec.Domain, rec.Confidence)
	case plugins.ActionCreated:
		fmt.Printf("Created handler %q (confidence %.3f), manifest saved to %s.\n",
			rec.Domain, rec.Confidence, cfg.Plugins.Dir)
	case plugins.ActionRejected:
		return fmt.Errorf("handler not created: %s", rec.Reason)
	}
	return nil
}

func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
