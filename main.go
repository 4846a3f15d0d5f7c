// =============================================================================
// Sales Analytics System - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Sales Analytics CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   sales-analytics analyze        - Run the full analysis pipeline
//   sales-analytics validate       - Validate configuration and input data
//   sales-analytics version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/cmd"
)

func main() {
	cmd.Execute()
}
