// Package corpus supplies training instances to the classifiers from the
// filesystem: every folder is a class, every regular file in it an
// instance.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNoSubfolders = errors.New("folder has no subfolders to classify into")

const defaultConcurrency = 8

type Source struct {
	logger *zap.Logger
	limit  int
}

func NewSource(logger *zap.Logger, concurrency int) *Source {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Source{logger: logger, limit: concurrency}
}

// Load reads every regular file under each folder into a class-labeled
// instance map. The class label is the folder path as given. Files are read
// concurrently but each lands in its directory-order slot, so per-class
// instance order is stable across calls.
func (s *Source) Load(ctx context.Context, folders []string) (map[string][]string, error) {
	classes := make(map[string][]string, len(folders))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for _, folder := range folders {
		paths, err := listFiles(folder)
		if err != nil {
			return nil, err
		}
		instances := make([]string, len(paths))
		classes[folder] = instances
		for i, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading instance %s: %w", path, err)
				}
				instances[i] = string(content)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, instances := range classes {
		total += len(instances)
	}
	s.logger.Debug("loaded training corpus",
		zap.Int("classes", len(classes)),
		zap.Int("instances", total))
	return classes, nil
}

// Split partitions a folder's immediate children into subfolders and loose
// files.
func Split(folder string) (subfolders, files []string, err error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", folder, err)
	}
	for _, entry := range entries {
		path := filepath.Join(folder, entry.Name())
		if entry.IsDir() {
			subfolders = append(subfolders, path)
		} else if entry.Type().IsRegular() {
			files = append(files, path)
		}
	}
	return subfolders, files, nil
}

func listFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("listing class folder %s: %w", folder, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			paths = append(paths, filepath.Join(folder, entry.Name()))
		}
	}
	return paths, nil
}
