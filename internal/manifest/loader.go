// internal/manifest/loader.go
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ChristosMaragkos/ItemFactory/internal/ctxlog"
	"github.com/ChristosMaragkos/ItemFactory/internal/fsutil"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

// Loader discovers and parses content manifest files.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadInto walks each path (a single .hcl file or a directory tree),
// decodes every manifest found and registers its items into reg. It
// returns the number of item blocks registered.
func (l *Loader) LoadInto(ctx context.Context, reg *registry.Registry, paths ...string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	total := 0

	for _, path := range paths {
		logger.Debug("Loader scanning content path...", "path", path)

		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk content path", "path", path, "error", err)
			return total, err
		}

		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", path)
			continue
		}

		logger.Debug("Found manifest files to load", "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return total, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
			}

			n, err := l.registerFile(ctx, reg, hclFile.Body, filePath)
			total += n
			if err != nil {
				return total, err
			}
			logger.Debug("Successfully loaded manifest file", "file", filePath, "items", n)
		}
	}

	logger.Info("Content manifests loaded.", "items_registered", total)
	return total, nil
}
