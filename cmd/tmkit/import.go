package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/internal/log"
)

// importRecord is one line of a JSON-lines import file.
type importRecord struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Context string `json:"context,omitempty"`
}

func importCmd() *cobra.Command {
	var (
		envFile    string
		sourceLang string
		targetLang string
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk-insert units from a JSON-lines file",
		Long: `Bulk-insert translation units from a JSON-lines file.

Each line is one unit: {"source": "...", "target": "...", "context": "..."}.
The whole file is inserted in a single transaction; any failure rolls the
import back entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(envFile, args[0], sourceLang, targetLang)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&sourceLang, "source-lang", "", "Source language code (required)")
	cmd.Flags().StringVar(&targetLang, "target-lang", "", "Target language code (required)")
	_ = cmd.MarkFlagRequired("source-lang")
	_ = cmd.MarkFlagRequired("target-lang")

	return cmd
}

func runImport(envFile, path, sourceLang, targetLang string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}
	logger := log.New(cfg)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var units []tm.Unit
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec importRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return fmt.Errorf("parse line %d: %w", line, err)
		}
		units = append(units, tm.NewRecord(rec.Source, rec.Target, rec.Context))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	count, err := client.Memory.AddBatch(context.Background(), units, sourceLang, targetLang)
	if err != nil {
		return err
	}

	logger.Info("import complete", "file", path, "units", count)
	return nil
}
