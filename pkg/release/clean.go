package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Clean removes every path and every glob match recursively. Paths that do
// not exist are ignored, so clean succeeds on an already-clean tree.
// Removals run concurrently since artifact directories are independent.
func Clean(ctx context.Context, paths, globs []string) error {
	targets := append([]string{}, paths...)

	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return fmt.Errorf("expand %q: %w", glob, err)
		}

		targets = append(targets, matches...)
	}

	g, _ := errgroup.WithContext(ctx)

	for _, target := range targets {
		g.Go(func() error {
			err := os.RemoveAll(target)
			if err != nil {
				return fmt.Errorf("remove %s: %w", target, err)
			}

			return nil
		})
	}

	return g.Wait()
}
