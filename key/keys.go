// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Driver - these keys control how the token stream is applied to the stack.
const (
	DriverPopToken      = "driver.pop_token"
	DriverStrict        = "driver.strict"
	DriverShowRemaining = "driver.show_remaining"
	DriverShowStats     = "driver.show_stats"
)

// Iconography - these keys manage the visual rendering of status symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern help and output rendering.
const (
	CliColored = "cli.colored"
)
