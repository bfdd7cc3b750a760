// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-media/lander-engine/internal/blueprint"
	"github.com/halcyon-media/lander-engine/internal/branddata"
	"github.com/halcyon-media/lander-engine/internal/classify"
	"github.com/halcyon-media/lander-engine/internal/generate"
	"github.com/halcyon-media/lander-engine/internal/linkcheck"
	"github.com/halcyon-media/lander-engine/internal/pagestore"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [keyword]",
	Short: "Generate a compliant landing page for a keyword",
	Long: `Generate classifies the keyword's search intent, selects the page
blueprint for the brand's vertical, and produces a full content document
grounded in stored brand research. The document is compliance-scanned,
auto-fixed when the scan fails, written to the output directory, and
saved to the page store.

The brand's vertical is classified from its domain unless --vertical is
given. Use --blueprint to bypass blueprint selection entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	keyword := strings.ToLower(strings.TrimSpace(args[0]))
	brandName, _ := cmd.Flags().GetString("brand-name")
	brandDomain, _ := cmd.Flags().GetString("brand-domain")
	brandID, _ := cmd.Flags().GetString("brand-id")
	destinationURL, _ := cmd.Flags().GetString("destination-url")
	verticalFlag, _ := cmd.Flags().GetString("vertical")
	blueprintFlag, _ := cmd.Flags().GetString("blueprint")
	noSave, _ := cmd.Flags().GetBool("no-save")
	verifyDestination, _ := cmd.Flags().GetBool("verify-destination")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if brandID == "" {
		brandID = brandDomain
	}

	cfg := pipelineConfig()
	backend, err := openBackend()
	if err != nil {
		return err
	}
	classifier := classify.New(backend, cfg.Classify)
	ctx := context.Background()

	if verifyDestination {
		if err := linkcheck.Verify(ctx, nil, destinationURL); err != nil {
			return err
		}
	}

	vertical := types.VerticalType(verticalFlag)
	if vertical == "" {
		vc, err := classifier.Vertical(ctx, brandDomain, brandName, "")
		if err != nil {
			return fmt.Errorf("classifying vertical: %w", err)
		}
		vertical = vc.Vertical
		fmt.Fprintf(os.Stderr, "vertical: %s (%.2f) %s\n", vc.Vertical, vc.Confidence, vc.Reasoning)
	}

	intent, err := classifier.Intent(ctx, keyword, vertical)
	if err != nil {
		return fmt.Errorf("classifying intent: %w", err)
	}
	fmt.Fprintf(os.Stderr, "intent: %s (%.2f) %s\n", intent.Intent, intent.Confidence, intent.Reasoning)

	var bp types.Blueprint
	if blueprintFlag != "" {
		if bp, err = blueprint.Get(blueprintFlag); err != nil {
			return err
		}
	} else {
		bp = blueprint.Select(vertical, intent.Intent, intent.Entities)
	}
	fmt.Fprintf(os.Stderr, "blueprint: %s\n", bp.Name)

	brands, err := branddata.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer brands.Close()

	gen := generate.New(backend, brands, cfg.Generation, logger)
	result, err := gen.Generate(ctx, generate.Input{
		Keyword:        keyword,
		BrandName:      brandName,
		BrandDomain:    brandDomain,
		BrandID:        brandID,
		Vertical:       vertical,
		Intent:         intent.Intent,
		Blueprint:      bp,
		DestinationURL: destinationURL,
		Entities:       intent.Entities,
	})
	if err != nil {
		return err
	}

	outPath, err := writeDocument(cfg.Generation.OutputDir, keyword, result.Document)
	if err != nil {
		return err
	}

	page := &types.Page{
		Keyword:        keyword,
		BrandName:      brandName,
		BrandDomain:    brandDomain,
		BrandID:        brandID,
		Vertical:       vertical,
		Intent:         intent.Intent,
		Blueprint:      bp.Name,
		DestinationURL: destinationURL,
		Document:       result.Document,
		Score:          result.Scan.Score,
		Passed:         result.Scan.Passed,
		Fixed:          result.Fixed,
	}
	if !noSave {
		store, err := pagestore.NewStore(cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(ctx, page)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved page %s\n", id)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	fmt.Printf("wrote %s\n", outPath)
	fmt.Printf("score: %d  passed: %v  fixed: %v  violations: %d\n",
		result.Scan.Score, result.Scan.Passed, result.Fixed, len(result.Scan.Violations))
	return nil
}

// writeDocument writes the document JSON to dir/<keyword-slug>.json.
func writeDocument(dir, keyword string, doc *types.ContentDocument) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling document: %w", err)
	}
	path := filepath.Join(dir, slugify(keyword)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}
	return path, nil
}

// slugify turns a keyword into a filesystem-safe file stem.
func slugify(keyword string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(keyword) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func init() {
	generateCmd.Flags().String("brand-name", "", "brand display name (required)")
	generateCmd.Flags().String("brand-domain", "", "brand domain, e.g. notion.so (required)")
	generateCmd.Flags().String("brand-id", "", "brand ID for stored research (default: brand domain)")
	generateCmd.Flags().String("destination-url", "", "affiliate destination URL for CTAs (required)")
	generateCmd.Flags().String("vertical", "", "brand vertical (default: classified from domain)")
	generateCmd.Flags().String("blueprint", "", "blueprint name override (default: selected from classification)")
	generateCmd.Flags().Bool("no-save", false, "skip saving the page to the page store")
	generateCmd.Flags().Bool("verify-destination", false, "check that the destination URL responds before generating")
	generateCmd.Flags().Bool("json", false, "output the saved page as JSON")
	_ = generateCmd.MarkFlagRequired("brand-name")
	_ = generateCmd.MarkFlagRequired("brand-domain")
	_ = generateCmd.MarkFlagRequired("destination-url")

	rootCmd.AddCommand(generateCmd)
}
