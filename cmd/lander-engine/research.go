// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-media/lander-engine/internal/branddata"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research [brand-id]",
	Short: "Research and store factual brand data",
	Long: `Research asks the AI backend for factual brand information — pricing,
features, pros and cons, company info, and competitors — one facet per
call, and stores each verified response with a freshness TTL. Stored
facets ground the generation prompt so pages state facts instead of
fabricating them.

With --check no research runs; the command reports whether the brand's
stored data is fresh and lists its records.`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	brandID := args[0]
	brandName, _ := cmd.Flags().GetString("brand-name")
	brandDomain, _ := cmd.Flags().GetString("brand-domain")
	typesFlag, _ := cmd.Flags().GetString("types")
	check, _ := cmd.Flags().GetBool("check")

	cfg := pipelineConfig()
	store, err := branddata.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if check {
		return reportFreshness(ctx, store, brandID)
	}

	if brandName == "" || brandDomain == "" {
		return fmt.Errorf("--brand-name and --brand-domain are required to research")
	}

	dataTypes, err := parseDataTypes(typesFlag)
	if err != nil {
		return err
	}

	backend, err := openBackend()
	if err != nil {
		return err
	}
	researcher := branddata.NewResearcher(backend, store, cfg.Research)

	summary, err := researcher.Research(ctx, brandID, brandName, brandDomain, dataTypes, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d facet(s) failed research", summary.Failed)
	}
	return nil
}

func reportFreshness(ctx context.Context, store *branddata.Store, brandID string) error {
	fresh, err := store.Fresh(ctx, brandID)
	if err != nil {
		return err
	}
	records, err := store.Records(ctx, brandID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("%s: no stored brand data\n", brandID)
		return nil
	}

	fmt.Printf("%-14s  %-28s  %-22s  %s\n", "Type", "Source", "Researched", "Expires")
	fmt.Println(strings.Repeat("-", 86))
	for _, r := range records {
		fmt.Printf("%-14s  %-28s  %-22s  %s\n", r.DataType, r.Source,
			r.ScrapedAt.Format("2006-01-02 15:04"), r.ExpiresAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\nfresh: %v\n", fresh)
	return nil
}

func parseDataTypes(flag string) ([]types.BrandDataType, error) {
	if flag == "" {
		return nil, nil
	}
	var out []types.BrandDataType
	for _, raw := range strings.Split(flag, ",") {
		dt := types.BrandDataType(strings.TrimSpace(raw))
		known := false
		for _, valid := range types.BrandDataTypes {
			if dt == valid {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown data type %q: use pricing, features, pros_cons, company_info, or competitors", dt)
		}
		out = append(out, dt)
	}
	return out, nil
}

func init() {
	researchCmd.Flags().String("brand-name", "", "brand display name")
	researchCmd.Flags().String("brand-domain", "", "brand domain, e.g. notion.so")
	researchCmd.Flags().String("types", "", "comma-separated facets to research (default: all)")
	researchCmd.Flags().Bool("check", false, "report stored data freshness instead of researching")

	rootCmd.AddCommand(researchCmd)
}
