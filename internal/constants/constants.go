package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "unused-buddy"

	// ConfigFileName is the default config file name
	ConfigFileName = ".unused-buddy.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "UNUSED_BUDDY"
)

// Output format constants
const (
	OutputFormatHuman = "human"
	OutputFormatAI    = "ai"
)

// Finding kind constants, matching the wire contract's abbreviated tags
const (
	FindingKindUnusedExport   = "ue"
	FindingKindUnreachableFile = "uf"
	FindingKindUncertain      = "uc"
)

// FixModeFilesOnly is the only fixMode value removal currently implements:
// remove deletes whole UnreachableFile candidates, never touches individual
// exports. Carried as a config field so a future fix mode (e.g. stripping
// dead named exports in place) has a documented slot to land in.
const FixModeFilesOnly = "files_only"

// Default allowed source extensions, in resolver precedence order
var DefaultExtensions = []string{"js", "ts", "jsx", "tsx"}

// DefaultIncludePatterns is applied when a config/flag supplies none
var DefaultIncludePatterns = []string{"src/**/*.{js,ts,jsx,tsx}"}

// DefaultExcludePatterns mirrors the reference implementation's defaults verbatim
var DefaultExcludePatterns = []string{
	"node_modules/**",
	"dist/**",
	"build/**",
	"coverage/**",
	".next/**",
	"out/**",
	"**/*.d.ts",
	"**/*.test.*",
	"**/*.spec.*",
	"**/__tests__/**",
}
