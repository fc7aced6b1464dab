// Package constants provides shared constants for the mediamix planner.
package constants

// Objective names accepted in configuration and allocator parameters.
const (
	// ObjectiveOutcome maximizes the model's predicted outcome.
	ObjectiveOutcome = "outcome"

	// ObjectiveProfit maximizes predicted outcome minus total spend.
	ObjectiveProfit = "profit"
)

// Allocation constants
const (
	// DefaultStep is the grid step used when the configuration omits one.
	DefaultStep = 1.0

	// StepTolerance bounds the rounding error accepted when checking that the
	// step evenly divides the total budget.
	StepTolerance = 1e-9
)

// Fitting constants
const (
	// CoefficientTolerance is the tolerance used when comparing fitted
	// coefficients against known values.
	CoefficientTolerance = 1e-6

	// VarianceTolerance is the threshold under which a design-matrix column is
	// treated as constant.
	VarianceTolerance = 1e-12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the planning API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// DecimalPrecision is the precision for currency rounding (2 decimal places)
const DecimalPrecision = 100
