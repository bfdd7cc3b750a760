// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-media/lander-engine/internal/classify"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify keyword intent and brand verticals",
	Long: `Classify resolves the two inputs blueprint selection needs: the search
intent behind a keyword and the business vertical of a brand. Rule
tables answer most cases; ambiguous ones fall back to the AI backend.`,
}

// --- intent subcommand ---

var classifyIntentCmd = &cobra.Command{
	Use:   "intent [keywords...]",
	Short: "Classify the search intent of one or more keywords",
	Long: `Intent classifies what a searcher wants from each keyword: comparison,
pricing, validation, a specific route or destination, and so on. City
entities detected in travel keywords are reported alongside the intent.
Multiple keywords are classified concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassifyIntent,
}

func runClassifyIntent(cmd *cobra.Command, args []string) error {
	verticalFlag, _ := cmd.Flags().GetString("vertical")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	backend, err := openBackend()
	if err != nil {
		return err
	}
	classifier := classify.New(backend, pipelineConfig().Classify)

	results, err := classifier.IntentBatch(context.Background(), args, types.VerticalType(verticalFlag))
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("%-36s  %-20s  %-6s  %-24s  %s\n", "Keyword", "Intent", "Conf", "Cities", "Reasoning")
	fmt.Println(strings.Repeat("-", 120))
	for i, r := range results {
		keyword := args[i]
		if len(keyword) > 36 {
			keyword = keyword[:33] + "..."
		}
		reasoning := r.Reasoning
		if len(reasoning) > 40 {
			reasoning = reasoning[:37] + "..."
		}
		fmt.Printf("%-36s  %-20s  %-6.2f  %-24s  %s\n",
			keyword, r.Intent, r.Confidence, strings.Join(r.Entities.Cities, ", "), reasoning)
	}
	return nil
}

// --- vertical subcommand ---

var classifyVerticalCmd = &cobra.Command{
	Use:   "vertical [domain]",
	Short: "Classify the business vertical of a brand domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassifyVertical,
}

func runClassifyVertical(cmd *cobra.Command, args []string) error {
	brandName, _ := cmd.Flags().GetString("brand-name")
	description, _ := cmd.Flags().GetString("description")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	backend, err := openBackend()
	if err != nil {
		return err
	}
	classifier := classify.New(backend, pipelineConfig().Classify)

	result, err := classifier.Vertical(context.Background(), args[0], brandName, description)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("vertical: %s (%.2f)\n%s\n", result.Vertical, result.Confidence, result.Reasoning)
	return nil
}

func init() {
	classifyIntentCmd.Flags().String("vertical", "", "brand vertical hint for intent rules")
	classifyIntentCmd.Flags().Bool("json", false, "output results as JSON")

	classifyVerticalCmd.Flags().String("brand-name", "", "brand display name")
	classifyVerticalCmd.Flags().String("description", "", "short brand description for ambiguous domains")
	classifyVerticalCmd.Flags().Bool("json", false, "output the result as JSON")

	classifyCmd.AddCommand(classifyIntentCmd)
	classifyCmd.AddCommand(classifyVerticalCmd)

	rootCmd.AddCommand(classifyCmd)
}
