package models

// Config holds everything gathered from the command line. It is built once
// per invocation, validated once, and read-only afterwards.
type Config struct {
	Package       string
	Version       string
	RepositoryURL string
	TestMode      bool
	TestFile      string
	OutputFile    string

	LogLevel            string
	LargeThreshold      string
	LargeThresholdBytes uint64
}
