// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-media/lander-engine/internal/compliance"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [document.json]",
	Short: "Scan a page document for compliance violations",
	Long: `Scan checks a generated page document against the compliance rules:
banned claim phrases, fabricated statistics, missing disclosure and FAQ,
length limits, and content depth. The exit status is non-zero when the
document has critical violations.

With --fix the auto-fixable violations are rewritten and the corrected
document is written next to the input (or to --out).`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	fix, _ := cmd.Flags().GetBool("fix")
	outPath, _ := cmd.Flags().GetString("out")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var doc types.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	result := compliance.Scan(&doc)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printScanResult(result)
	}

	if fix {
		fixed := compliance.Fix(&doc)
		if outPath == "" {
			outPath = strings.TrimSuffix(args[0], ".json") + ".fixed.json"
		}
		out, err := json.MarshalIndent(fixed, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling fixed document: %w", err)
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("writing fixed document: %w", err)
		}
		rescan := compliance.Scan(fixed)
		fmt.Printf("\nwrote %s (score %d -> %d)\n", outPath, result.Score, rescan.Score)
		return nil
	}

	if !result.Passed {
		return fmt.Errorf("%d critical violation(s)", result.CriticalCount())
	}
	return nil
}

func printScanResult(result types.ScanResult) {
	if len(result.Violations) > 0 {
		fmt.Printf("%-8s  %-24s  %-36s  %s\n", "Severity", "Rule", "Location", "Suggestion")
		fmt.Println(strings.Repeat("-", 110))
		for _, v := range result.Violations {
			location := v.Location
			if len(location) > 36 {
				location = location[:33] + "..."
			}
			fmt.Printf("%-8s  %-24s  %-36s  %s\n", v.Severity, v.Rule, location, v.Suggestion)
		}
		fmt.Println()
	}
	fmt.Printf("score: %d  passed: %v  critical: %d  warnings: %d\n",
		result.Score, result.Passed, result.CriticalCount(), result.WarningCount())
}

func init() {
	scanCmd.Flags().Bool("fix", false, "rewrite auto-fixable violations and write the corrected document")
	scanCmd.Flags().String("out", "", "output path for the fixed document (default: <input>.fixed.json)")
	scanCmd.Flags().Bool("json", false, "output the scan result as JSON")

	rootCmd.AddCommand(scanCmd)
}
