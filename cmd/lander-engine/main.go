// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lander-engine CLI.
// Implements: prd001-blueprints, prd003-generation, prd004-compliance,
//             prd005-brand-data, prd006-classification, prd007-page-store (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/internal/secrets"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger *zap.Logger

// secretDefault returns fallback when set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the lander-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "lander-engine",
	Short: "Blueprint-driven landing page generation and compliance",
	Long: `lander-engine generates SEO landing pages for affiliate keywords. A keyword
is classified by search intent, matched against the brand's vertical to a page
blueprint, and expanded into a full content document grounded in researched
brand data. Every page is scanned for compliance violations and auto-fixed
before it is stored.

Each pipeline stage is a subcommand: classify, research, generate, scan,
blueprints, and pages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env values become plain environment variables, visible to
		// viper's AutomaticEnv and to the OpenAI SDK.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lander-engine.yaml or ~/.config/lander-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose (development) logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lander-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lander-engine"))
		}
	}

	viper.SetEnvPrefix("LANDER_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("ai.model", "gpt-4o")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("generation.output_dir", "output/pages")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// aiConfig resolves shared AI settings from config, secrets, and the
// OPENAI_API_KEY / OPENAI_BASE_URL environment variables, in that order
// of preference.
func aiConfig() types.AIConfig {
	apiKey := secretDefault("openai-api-key", viper.GetString("ai.api_key"))
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	baseURL := secretDefault("openai-base-url", viper.GetString("ai.base_url"))
	if baseURL == "" {
		baseURL = os.Getenv("OPENAI_BASE_URL")
	}
	return types.AIConfig{
		Model:      viper.GetString("ai.model"),
		APIKey:     apiKey,
		BaseURL:    baseURL,
		MaxRetries: viper.GetInt("ai.max_retries"),
	}
}

// pipelineConfig assembles stage configuration from viper. Zero-valued
// stage settings fall through to each stage's own defaults.
func pipelineConfig() types.PipelineConfig {
	ai := aiConfig()
	return types.PipelineConfig{
		Generation: types.GenerationConfig{
			AIConfig:    ai,
			Temperature: viper.GetFloat64("generation.temperature"),
			MaxTokens:   viper.GetInt64("generation.max_tokens"),
			OutputDir:   viper.GetString("generation.output_dir"),
		},
		Research: types.ResearchConfig{
			AIConfig:    ai,
			Temperature: viper.GetFloat64("research.temperature"),
			MaxTokens:   viper.GetInt64("research.max_tokens"),
			TTL:         time.Duration(viper.GetInt("research.ttl_hours")) * time.Hour,
		},
		Classify: types.ClassifyConfig{
			AIConfig:      ai,
			MaxConcurrent: viper.GetInt("classify.max_concurrent"),
		},
		Storage: types.StorageConfig{
			DataDir: viper.GetString("storage.data_dir"),
		},
	}
}

// openBackend builds the shared OpenAI backend for AI-driven commands.
func openBackend() (llm.Backend, error) {
	return llm.NewOpenAIBackend(aiConfig())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
