// Command eduops-assistant is the CLI for the EduOps conversational
// query router. Run without arguments for an interactive chat; use
// "ask" for a one-shot question or "patterns" to list the catalog.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/akshit-shetty/eduops-assistant/internal/classifier"
	"github.com/akshit-shetty/eduops-assistant/internal/config"
	"github.com/akshit-shetty/eduops-assistant/internal/fallback"
	"github.com/akshit-shetty/eduops-assistant/internal/format"
	"github.com/akshit-shetty/eduops-assistant/internal/model"
	"github.com/akshit-shetty/eduops-assistant/internal/registry"
	"github.com/akshit-shetty/eduops-assistant/internal/router"
	"github.com/akshit-shetty/eduops-assistant/internal/session"
	"github.com/akshit-shetty/eduops-assistant/internal/store"
)

var (
	configPath  string
	dbPath      string
	sessionPath string
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "eduops-assistant",
	Short: "Conversational query assistant for the EduOps360 dashboard",
	Long: `eduops-assistant answers plain-English questions about learners,
cohorts, grades and dissertations by routing them to a catalog of safe
parameterized queries over the student database.

Run without arguments to start an interactive chat session.`,
	SilenceUsage: true,
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
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the supported query patterns",
	RunE:  runPatterns,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override the student database path")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session-db", "", "persist conversation context to this SQLite file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(askCmd, patternsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if sessionPath != "" {
		cfg.Session.Path = sessionPath
	}
	return cfg, nil
}

// buildRouter wires the full turn pipeline from configuration.
func buildRouter(cfg *config.Config) (*router.Router, func(), error) {
	exec, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = exec.Close() }

	var sessions session.Store
	if cfg.Session.Path != "" {
		sdb, err := store.OpenDB(cfg.Session.Path)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to open session database: %w", err)
		}
		sessions, err = session.NewSQLiteStore(sdb)
		if err != nil {
			sdb.Close()
			cleanup()
			return nil, nil, err
		}
		closeExec := cleanup
		cleanup = func() { _ = sdb.Close(); closeExec() }
	} else {
		sessions = session.NewMemory()
	}

	reg, err := registry.New(registry.Builtin())
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var client model.Client
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		client = model.NewNVIDIAClient(&model.NVIDIAConfig{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		})
	}

	norm := classifier.NewNormalizer()
	chain := fallback.NewChain(logger,
		fallback.NewDynamicQuery(exec, norm),
		fallback.NewEscalation(client, exec, time.Duration(cfg.AI.TimeoutSeconds)*time.Second),
		fallback.NewSuggestions(),
	)

	r := router.New(&router.Config{
		Registry:     reg,
		Matcher:      classifier.NewMatcher(reg, norm, cfg.Matcher),
		Sessions:     sessions,
		Executor:     exec,
		Formatter:    format.New(cfg.Matcher.DisplayCap),
		Fallback:     chain,
		Logger:       logger,
		CandidateCap: cfg.Matcher.CandidateCap,
	})
	return r, cleanup, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, cleanup, err := buildRouter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	conversationID := uuid.NewString()
	fmt.Println("EduOps Assistant - ask me about learners, cohorts, grades and dissertations.")
	fmt.Println(`Type "help" for examples, "exit" to quit.`)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		fmt.Println(r.HandleTurn(cmd.Context(), conversationID, line))
		fmt.Println()
	}
	return scanner.Err()
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, cleanup, err := buildRouter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(r.HandleTurn(cmd.Context(), uuid.NewString(), strings.Join(args, " ")))
	return nil
}

func runPatterns(cmd *cobra.Command, args []string) error {
	reg, err := registry.New(registry.Builtin())
	if err != nil {
		return err
	}

	for _, p := range reg.Patterns() {
		kind := "query"
		if p.Guidance() {
			kind = "guidance"
		}
		params := "-"
		if len(p.Params) > 0 {
			params = strings.Join(p.Params, ", ")
		}
		fmt.Printf("%3d  %-32s %-9s params: %-15s %s\n", p.ID, p.Name, kind, params, p.Description)
	}
	return nil
}
