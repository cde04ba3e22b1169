package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yang-jeongman/snapmobile/internal/classifier"
	"github.com/yang-jeongman/snapmobile/internal/config"
	"github.com/yang-jeongman/snapmobile/internal/engine"
	"github.com/yang-jeongman/snapmobile/internal/layout"
	"github.com/yang-jeongman/snapmobile/internal/mobile"
	"github.com/yang-jeongman/snapmobile/internal/model"
	"github.com/yang-jeongman/snapmobile/internal/storage"
)

// document is the fragment file format produced by the extraction service.
type document struct {
	PageHeight float64              `json:"page_height"`
	Fragments  []model.TextFragment `json:"fragments"`
}

// buildEngine wires the four pipeline stages from the effective
// configuration.
func buildEngine(cfg config.Config) (*engine.Engine, *classifier.Classifier, error) {
	cls, err := classifier.New(classifier.DefaultRules())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build classifier: %w", err)
	}
	analyzer, err := layout.NewAnalyzer(cfg.Layout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build layout analyzer: %w", err)
	}
	detector, err := layout.NewDetector(cfg.Cards)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build card detector: %w", err)
	}
	synthesizer, err := mobile.NewSynthesizer(cfg.Mobile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build synthesizer: %w", err)
	}
	eng, err := engine.NewWithConfig(cls, analyzer, detector, synthesizer, cfg.Engine)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return eng, cls, nil
}

// openStore opens the migrated corrections database.
func openStore(ctx context.Context, cfg config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// readDocument loads a fragment file. Both the wrapped document form and a
// bare fragment array are accepted.
func readDocument(path string) (document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
	if err != nil {
		return document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && len(doc.Fragments) > 0 {
		return doc, nil
	}

	var fragments []model.TextFragment
	if err := json.Unmarshal(data, &fragments); err != nil {
		return document{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	doc.Fragments = fragments
	return doc, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is
// empty or "-".
func writeJSON(path string, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	encoded = append(encoded, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(path, encoded, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
