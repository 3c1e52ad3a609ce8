package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/akinator/internal/config"
	"github.com/aretw0/akinator/internal/presentation/graph"
	"github.com/aretw0/akinator/pkg/codec"
)

// PrintGraph writes a Mermaid flowchart of the stored tree.
func PrintGraph(ctx context.Context, cfg config.Config, out io.Writer) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	root, err := loadOrDefault(ctx, store)
	if err != nil {
		return fmt.Errorf("error loading tree: %w", err)
	}
	_, err = fmt.Fprint(out, graph.GenerateMermaid(root))
	return err
}

// PrintStats writes the size and depth of the stored tree.
func PrintStats(ctx context.Context, cfg config.Config, out io.Writer) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	root, err := loadOrDefault(ctx, store)
	if err != nil {
		return fmt.Errorf("error loading tree: %w", err)
	}

	s := root.Stats()
	fmt.Fprintf(out, "Animals:   %d\n", s.Leaves)
	fmt.Fprintf(out, "Questions: %d\n", s.Questions)
	fmt.Fprintf(out, "Nodes:     %d\n", s.Nodes)
	fmt.Fprintf(out, "Depth:     %d\n", s.Depth)
	return nil
}

// ExportTree writes the stored tree as a YAML document.
func ExportTree(ctx context.Context, cfg config.Config, out io.Writer) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	root, err := loadOrDefault(ctx, store)
	if err != nil {
		return fmt.Errorf("error loading tree: %w", err)
	}

	data, err := codec.MarshalYAML(root)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// ImportTree replaces the stored tree with the YAML document at path.
// The document is fully validated before anything is written.
func ImportTree(ctx context.Context, cfg config.Config, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	root, err := codec.UnmarshalYAML(data)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Save(ctx, root); err != nil {
		return fmt.Errorf("error saving tree: %w", err)
	}

	fmt.Fprintf(out, "Imported %d animals.\n", root.Stats().Leaves)
	return nil
}
