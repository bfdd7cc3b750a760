// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/halcyon-media/lander-engine/internal/pagestore"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage stored pages (list, show, delete)",
	Long: `Pages manages the SQLite page store that generated landing pages are
saved to, with their classification, blueprint, and compliance outcome.`,
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored pages, newest first",
	RunE:  runPagesList,
}

func runPagesList(cmd *cobra.Command, args []string) error {
	store, err := pagestore.NewStore(pipelineConfig().Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	pages, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		fmt.Println("No pages stored.")
		return nil
	}

	fmt.Printf("%-36s  %-28s  %-26s  %-5s  %-6s  %s\n",
		"ID", "Keyword", "Blueprint", "Score", "Passed", "Created")
	fmt.Println(strings.Repeat("-", 124))
	for _, p := range pages {
		keyword := p.Keyword
		if len(keyword) > 28 {
			keyword = keyword[:25] + "..."
		}
		fmt.Printf("%-36s  %-28s  %-26s  %-5d  %-6v  %s\n",
			p.ID, keyword, p.Blueprint, p.Score, p.Passed, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\n%d pages\n", len(pages))
	return nil
}

var pagesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one stored page with its full document",
	Args:  cobra.ExactArgs(1),
	RunE:  runPagesShow,
}

func runPagesShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := pagestore.NewStore(pipelineConfig().Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	page, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	switch format {
	case "json", "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	case "yaml":
		out, err := yaml.Marshal(page)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

var pagesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one stored page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPagesDelete,
}

func runPagesDelete(cmd *cobra.Command, args []string) error {
	store, err := pagestore.NewStore(pipelineConfig().Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func init() {
	pagesShowCmd.Flags().String("format", "json", "output format: json or yaml")

	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesShowCmd)
	pagesCmd.AddCommand(pagesDeleteCmd)

	rootCmd.AddCommand(pagesCmd)
}
