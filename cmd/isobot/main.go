package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zenthmed/isoagent"
	"github.com/zenthmed/isoagent/llm"
)

const botLabel = "isobot"

var (
	flagConfig   string
	flagProvider string
	flagModel    string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "isobot",
	Short: "Chatbot for ISO medical device standards",
	Long: `isobot answers questions about ISO medical device standards
(ISO 13485, ISO 14971, IEC 62304) using a staged LLM pipeline over a
built-in standards catalog.`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "isobot.toml", "path to config file")
	rootCmd.Flags().StringVarP(&flagProvider, "provider", "p", "", "completion provider (gemini, claude, openai)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "model name override")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}

	logger, err := buildLogger(flagDebug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		return err
	}

	agent := isoagent.New(
		isoagent.WithCompletionProvider(provider),
		isoagent.WithLogger(logger),
	)
	session := isoagent.NewSession(agent)

	fmt.Println("ISO Medical Device Standards Chatbot")
	fmt.Println("Ask me about ISO standards for medical devices!")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye!")
			return nil
		case "":
			continue
		}

		answer, err := session.Ask(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s: %s\n\n", botLabel, answer)
	}
	return scanner.Err()
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	// Keep the REPL quiet unless something goes wrong.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	return cfg.Build()
}

func buildProvider(ctx context.Context, cfg Config) (isoagent.CompletionProvider, error) {
	timeout := cfg.timeoutDuration()
	switch cfg.Provider {
	case "gemini":
		return llm.NewGemini(ctx, llm.GeminiConfig{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: float32(cfg.Temperature),
			Timeout:     timeout,
		})
	case "claude":
		return llm.NewClaude(llm.ClaudeConfig{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     timeout,
		})
	case "openai":
		if cfg.APIKey == "" && cfg.Endpoint == "" {
			return nil, fmt.Errorf("please set your OPENAI_API_KEY environment variable or api_key in the config file")
		}
		return llm.NewOpenAI(llm.OpenAIConfig{
			Endpoint:    cfg.Endpoint,
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			Temperature: cfg.Temperature,
			Timeout:     timeout,
		}), nil
	}
	return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
}
