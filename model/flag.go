package model

type Flags struct {
	// Positional argument
	ConfigPath string

	// Execution
	GcloudPath string
	DryRun     bool

	// Timezone resolution
	LocaltimePath string
	ZoneinfoPath  string

	// Output
	LogLevel string
	NoBanner bool
}
