// Package main hosts the costar CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the comparison report, dataset cache
// maintenance, and configuration scaffolding. It centralizes configuration
// resolution and logger setup so subcommands can focus on user experience;
// the actual pipeline work lives in the internal packages.
package main
