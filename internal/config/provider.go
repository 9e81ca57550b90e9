// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// Provider resolves settings from explicit options.
// This abstraction enables testing the CLI with canned settings.
type Provider interface {
	Resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error)
}

type layeredProvider struct{}

// NewProvider creates the production provider, backed by Resolve.
func NewProvider() Provider {
	return &layeredProvider{}
}

// Resolve implements Provider.
func (p *layeredProvider) Resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error) {
	return Resolve(ctx, opts)
}
