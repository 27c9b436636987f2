package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nicontent/nicontent/content"
)

// NewSeedCmd creates and returns the seed subcommand. It generates a
// throwaway library for trying the other commands.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample library with randomized product folders",
		Long: `Generate a sample content library for trying out move, rename and pairs.

Each product gets a plain "X" folder, an "X Library" folder, or both.
Every folder holds a single info.txt with a UUID line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := seedLibrary(outputPath, count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d products in %s (%d plain, %d library only, %d paired)\n",
				count, outputPath, stats.plain, stats.library, stats.paired)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&count, "count", "c", 20, "Number of products to generate")

	cmd.MarkFlagRequired("output")

	return cmd
}

type seedStats struct {
	plain, library, paired int
}

func seedLibrary(outputPath string, count int) (seedStats, error) {
	var stats seedStats
	if count < 0 {
		return stats, fmt.Errorf("count must not be negative (got %d)", count)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}

	for range count {
		id := uuid.New()
		product := fmt.Sprintf("Product %s", id.String()[:8])

		roll, err := rand.Int(rand.Reader, big.NewInt(100))
		if err != nil {
			return stats, err
		}
		var names []string
		switch {
		case roll.Int64() < 30:
			names = []string{product}
			stats.plain++
		case roll.Int64() < 60:
			names = []string{product + content.LibrarySuffix}
			stats.library++
		default:
			names = []string{product, product + content.LibrarySuffix}
			stats.paired++
		}

		for _, name := range names {
			dir := filepath.Join(outputPath, name)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return stats, fmt.Errorf("create %s: %w", dir, err)
			}
			if err := os.WriteFile(filepath.Join(dir, "info.txt"), []byte(id.String()+"\n"), 0o644); err != nil {
				return stats, fmt.Errorf("write %s: %w", dir, err)
			}
		}
	}
	return stats, nil
}
