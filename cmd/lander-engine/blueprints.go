// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/halcyon-media/lander-engine/internal/blueprint"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "Inspect the landing page blueprint catalog",
	Long: `Blueprints lists the static page designs the generator selects from.
Each blueprint serves one (vertical, intent) pair and defines the page's
section order, required sections, headline template, and call to action.`,
}

var blueprintsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blueprints, optionally filtered by vertical",
	RunE:  runBlueprintsList,
}

func runBlueprintsList(cmd *cobra.Command, args []string) error {
	verticalFlag, _ := cmd.Flags().GetString("vertical")

	blueprints := blueprint.All()
	if verticalFlag != "" {
		blueprints = blueprint.ByVertical(types.VerticalType(verticalFlag))
	}
	if len(blueprints) == 0 {
		fmt.Println("No blueprints found.")
		return nil
	}

	fmt.Printf("%-28s  %-12s  %-20s  %s\n", "Name", "Vertical", "Intent", "Sections")
	fmt.Println(strings.Repeat("-", 78))
	for _, b := range blueprints {
		fmt.Printf("%-28s  %-12s  %-20s  %d\n", b.Name, b.Vertical, b.Intent, len(b.SectionOrder))
	}
	fmt.Printf("\n%d blueprints\n", len(blueprints))
	return nil
}

var blueprintsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one blueprint's full definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintsShow,
}

func runBlueprintsShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	b, err := blueprint.Get(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		out, err := yaml.Marshal(b)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

func init() {
	blueprintsListCmd.Flags().String("vertical", "", "filter by vertical: travel, ecommerce, b2b_saas, finance, subscription, d2c, health, other")
	blueprintsShowCmd.Flags().String("format", "yaml", "output format: yaml or json")

	blueprintsCmd.AddCommand(blueprintsListCmd)
	blueprintsCmd.AddCommand(blueprintsShowCmd)

	rootCmd.AddCommand(blueprintsCmd)
}
