package gate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"depviz/models"
)

const (
	DefaultRepositoryURL  = "https://repo1.maven.org/maven2/"
	DefaultOutputFile     = "dependency_graph.png"
	DefaultLargeThreshold = "3MB"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".svg"}

func resolvePath(path string) (string, error) {
	resolved, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path with home dir: %s: %w", path, err)
	}
	absolute, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %s: %w", resolved, err)
	}
	return absolute, nil
}

// Resolve prepares cfg for validation: expands the test repository path,
// parses the large-dependency threshold and applies the log level. Every
// problem is collected rather than aborting on the first one, so the caller
// can report them alongside validation errors.
func Resolve(cfg *models.Config) []error {
	var errs []error

	if cfg.TestFile != "" {
		resolved, err := resolvePath(cfg.TestFile)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.TestFile = resolved
		}
	}

	b, err := humanize.ParseBytes(cfg.LargeThreshold)
	if err != nil {
		errs = append(errs, fmt.Errorf("unable to parse threshold %s as a size", cfg.LargeThreshold))
	} else {
		cfg.LargeThresholdBytes = b
	}

	switch strings.ToUpper(cfg.LogLevel) {
	case "TRACE":
		log.SetLevel(log.TraceLevel)
		cfg.LogLevel = "TRACE"
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
		cfg.LogLevel = "DEBUG"
	case "INFO":
		log.SetLevel(log.InfoLevel)
		cfg.LogLevel = "INFO"
	default:
		errs = append(errs, fmt.Errorf("unknown log level: %s", cfg.LogLevel))
	}

	return errs
}

// Check validates cfg against the fixed rule set. Every rule is evaluated
// and every violation returned; nothing short-circuits.
func Check(cfg models.Config) []error {
	var errs []error

	if !strings.Contains(cfg.Package, ":") {
		errs = append(errs, errors.New("package must be in groupId:artifactId format"))
	}

	if strings.TrimSpace(cfg.Version) == "" {
		errs = append(errs, errors.New("version must not be empty"))
	}

	if cfg.TestMode && cfg.TestFile == "" {
		errs = append(errs, errors.New("a test repository file must be provided in test mode"))
	}
	if !cfg.TestMode && cfg.TestFile != "" {
		errs = append(errs, errors.New("a test repository file may only be used in test mode"))
	}

	if cfg.OutputFile == "" {
		errs = append(errs, errors.New("output file name must not be empty"))
	} else if !hasImageExtension(cfg.OutputFile) {
		errs = append(errs, errors.New("output file must have an image extension (.png, .jpg, .jpeg, .svg)"))
	}

	return errs
}

func hasImageExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
