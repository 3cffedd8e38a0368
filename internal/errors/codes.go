// Package errors provides structured error handling for envcheck.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Resource errors (missing binaries, files, directories)
//   - 3XX: Version errors
//   - 4XX: Probe errors
//   - 5XX: Subprocess errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryResource indicates a binary, file, or directory that could not be found.
	CategoryResource Category = "RESOURCE"
	// CategoryVersion indicates a tool or package below the supported minimum.
	CategoryVersion Category = "VERSION"
	// CategoryProbe indicates a probe the installed tooling does not support.
	CategoryProbe Category = "PROBE"
	// CategorySubprocess indicates a spawned inspection process misbehaved.
	CategorySubprocess Category = "SUBPROCESS"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"

	// Resource errors (200-299)
	ErrCodeResourceMissing  = "ERR_201_RESOURCE_MISSING"
	ErrCodePermissionDenied = "ERR_202_PERMISSION_DENIED"

	// Version errors (300-399)
	ErrCodeVersionIncompatible = "ERR_301_VERSION_INCOMPATIBLE"
	ErrCodeVersionUnparsable   = "ERR_302_VERSION_UNPARSABLE"

	// Probe errors (400-499)
	ErrCodeProbeUnsupported = "ERR_401_PROBE_UNSUPPORTED"

	// Subprocess errors (500-599)
	ErrCodeSubprocessTimeout = "ERR_501_SUBPROCESS_TIMEOUT"
	ErrCodeSubprocessCrash   = "ERR_502_SUBPROCESS_CRASH"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategorySubprocess
	}

	// Extract the leading digit of the numeric portion (e.g., "2" from "ERR_201_...").
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryResource
	case '3':
		return CategoryVersion
	case '4':
		return CategoryProbe
	default:
		return CategorySubprocess
	}
}
