package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmkit/tmkit/internal/log"
)

func queryCmd() *cobra.Command {
	var (
		envFile     string
		sourceLangs []string
		targetLangs []string
	)

	cmd := &cobra.Command{
		Use:   "query TEXT",
		Short: "Look up fuzzy-match suggestions for a source string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(envFile, strings.Join(args, " "), sourceLangs, targetLangs)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringSliceVar(&sourceLangs, "source-lang", nil, "Source language code(s) (required)")
	cmd.Flags().StringSliceVar(&targetLangs, "target-lang", nil, "Target language code(s) (required)")
	_ = cmd.MarkFlagRequired("source-lang")
	_ = cmd.MarkFlagRequired("target-lang")

	return cmd
}

func runQuery(envFile, text string, sourceLangs, targetLangs []string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	logger := log.New(cfg)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	matches, err := client.Memory.Suggest(context.Background(), text, sourceLangs, targetLangs)
	if err != nil {
		return err
	}

	type row struct {
		Source  string `json:"source"`
		Target  string `json:"target"`
		Context string `json:"context,omitempty"`
		Quality int    `json:"quality"`
	}
	rows := make([]row, len(matches))
	for i, m := range matches {
		rows[i] = row{Source: m.Source(), Target: m.Target(), Context: m.Context(), Quality: m.Quality()}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
