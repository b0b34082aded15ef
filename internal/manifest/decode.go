// internal/manifest/decode.go
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/ChristosMaragkos/ItemFactory/internal/ctxlog"
	"github.com/ChristosMaragkos/ItemFactory/internal/identifier"
	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
	"github.com/ChristosMaragkos/ItemFactory/internal/schema"
)

// registerFile decodes one manifest body and registers its item blocks.
func (l *Loader) registerFile(ctx context.Context, reg *registry.Registry, body hcl.Body, filePath string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	var cfg schema.ContentConfig
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return 0, fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
	}

	count := 0
	for _, block := range cfg.Items {
		def, err := buildDefinition(block)
		if err != nil {
			return count, fmt.Errorf("invalid item block in %s: %w", filePath, err)
		}

		key := identifier.New(block.Namespace, block.Name).String()
		if reg.Has(key) {
			logger.Warn("Duplicate item identifier, resolving per conflict policy.",
				"identifier", key, "policy", reg.ConflictPolicy().String(), "file", filePath)
		}

		if _, err := reg.Register(def); err != nil {
			return count, fmt.Errorf("failed to register %q from %s: %w", key, filePath, err)
		}
		count++
		logger.Debug("Registered item from manifest.", "identifier", key, "file", filePath)
	}

	return count, nil
}

// buildDefinition translates a decoded item block into a Definition.
func buildDefinition(block *schema.ItemBlock) (*item.Definition, error) {
	settings := item.DefaultSettings()
	if block.Settings != nil {
		if block.Settings.MaxStack != nil {
			settings.MaxStack = *block.Settings.MaxStack
		}
		if block.Settings.Flammable != nil {
			settings.Flammable = *block.Settings.Flammable
		}
	}

	def := item.New(block.Namespace, block.Name, settings)
	if block.Description != "" {
		def.WithDescription(block.Description)
	}

	if block.Attributes != nil {
		attrs, diags := block.Attributes.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("attributes of %s:%s: %w", block.Namespace, block.Name, diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("attribute %q of %s:%s: %w", name, block.Namespace, block.Name, diags)
			}
			def.SetAttribute(name, val)
		}
	}

	return def, nil
}
