package config

const IsDev = false

const (
	// ToolName is the name jj knows this binary by when invoked as a
	// diff-editing tool (--tool=jjhunk).
	ToolName = "jjhunk"

	// SpecEnvVar carries the path of the selection spec file from the
	// wrapping command (split/commit/squash) to the select subcommand
	// that jj spawns.
	SpecEnvVar = "JJ_HUNK_SELECTION"

	// InstructionsFile is the helper file jj places in the snapshot
	// directories handed to a diff-editing tool; it is never diffed.
	InstructionsFile = "JJ-INSTRUCTIONS"
)

const (
	DefaultFormat     = "json"
	DefaultBinaryMode = "mark"
)
