package fileclassify

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Counts reports what a directory scan found.
type Counts struct {
	Folders int
	Files   int
}

type Scanner struct{}

func NewScanner() Scanner {
	return Scanner{}
}

// Count tallies the folders and files under root, not counting root itself.
// It stops early when the context is cancelled.
func (s Scanner) Count(ctx context.Context, root string) (Counts, error) {
	var counts Counts

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path == root {
			return nil
		}

		if entry.IsDir() {
			counts.Folders++
		} else {
			counts.Files++
		}

		return nil
	})
	if err != nil {
		return Counts{}, fmt.Errorf("scanning %s: %w", root, err)
	}

	return counts, nil
}
