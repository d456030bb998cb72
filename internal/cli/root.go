// Package cli implements the stecheck command-line interface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
	"github.com/ste-tools/stecheck/internal/pipeline"
)

var (
	cfgFile string
	verbose bool

	inputFile   string
	directText  string
	interactive bool
	outJSON     string
	outMD       string

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// rootCmd represents the base command. Run without a subcommand it behaves
// like the classic checker: file, direct text, or interactive mode, and a
// built-in sample suite when none of the three is given.
var rootCmd = &cobra.Command{
	Use:   "stecheck",
	Short: "stecheck - Simplified Technical English rule checker",
	Long: `stecheck checks technical-writing sentences against five Simplified
Technical English style rules:

  1. Proper use of articles and demonstrative adjectives
  2. Active voice in procedural writing
  3. One instruction per sentence
  4. Imperative form for instructions
  5. Maximum 20 words per sentence

Where a deterministic rewrite is available, stecheck emits a corrected
sentence alongside an explanation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stecheck v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.stecheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Input selection
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input text file")
	rootCmd.Flags().StringVarP(&directText, "text", "t", "", "direct text input")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "interactive mode")
	// Compatibility alias; pflag shorthands are single characters.
	rootCmd.Flags().BoolVar(&interactive, "int", false, "interactive mode")
	_ = rootCmd.Flags().MarkHidden("int")

	// Output flags
	rootCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	rootCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")

	registerLLMFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

func registerLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report summary")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// initConfig reads in config file and STECHECK_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.stecheck")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STECHECK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with the
// config file and flags.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("rules.max_words") {
		cfg.Rules.MaxWords = viper.GetInt("rules.max_words")
	}
	if verbs := viper.GetStringSlice("rules.instruction_verbs"); len(verbs) > 0 {
		cfg.Rules.InstructionVerbs = verbs
	}
	if forms := viper.GetStringMapString("rules.imperative_forms"); len(forms) > 0 {
		cfg.Rules.ImperativeForms = forms
	}

	cfg.Output.Verbose = verbose
	return cfg
}

// configureLLM wires the summarizer settings from flags and environment.
func configureLLM(cfg *model.Config) error {
	if !llmEnabled {
		return nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}

// newPipeline builds the annotator and pipeline. A missing or broken tagger
// model is fatal here, before any rule evaluation starts.
func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	annotator, err := nlp.NewProseAnnotator()
	if err != nil {
		return nil, fmt.Errorf("language model unavailable: %w", err)
	}
	return pipeline.New(cfg, annotator), nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := configureLLM(cfg); err != nil {
		return err
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch {
	case interactive:
		return runInteractive(ctx, p)

	case inputFile != "":
		report, err := p.CheckFile(ctx, inputFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("Error: File '%s' not found.\n", inputFile)
				return nil
			}
			return err
		}
		return p.RenderReport(report, outJSON, outMD, verbose)

	case directText != "":
		report, err := p.CheckText(ctx, "text", directText)
		if err != nil {
			return err
		}
		return p.RenderReport(report, outJSON, outMD, verbose)

	default:
		runSamples(p)
		return nil
	}
}

// runInteractive reads sentences line by line until a quit sentinel.
func runInteractive(ctx context.Context, p *pipeline.Pipeline) error {
	fmt.Println("=== Technical Writing Rule Checker ===")
	fmt.Println("Enter sentences to check (type 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			return nil
		case "":
			continue
		}

		report, err := p.CheckText(ctx, "interactive", input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := p.RenderReport(report, "", "", false); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// sampleTexts is the built-in demonstration suite.
var sampleTexts = []string{
	"Turn shaft assembly.",
	"Data module tells you how to operate unit.",
	"The safety procedures are supplied by the manufacturer.",
	"The main gear leg is held by the side stay.",
	"The circuits are connected by a switching relay.",
	"Set the TEST switch to the middle position and release the SHORT-CIRCUIT TEST switch.",
	"The test can be continued.",
	"Oil and grease are to be removed with a degreasing agent.",
	"Open the panel and disconnect the power cable.",
}

// runSamples checks each sample sentence and prints the outcome.
func runSamples(p *pipeline.Pipeline) {
	fmt.Println("=== Technical Writing Rule Checker ===")
	fmt.Print("Running with sample test cases...\n\n")

	for i, text := range sampleTexts {
		fmt.Printf("%d. Testing: %s\n", i+1, text)

		result := p.Checker().CheckSentence(text)
		if result.HasViolation() {
			explanations := make([]string, len(result.Applied))
			for j, a := range result.Applied {
				explanations[j] = a.Explanation
			}
			fmt.Printf("   Issues found: %s\n", strings.Join(explanations, "; "))
			fmt.Printf("   Corrected: %s\n", result.Corrected)
		} else {
			fmt.Println("   No violations found")
		}
		fmt.Println()
	}
}
