package report

import (
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"depviz/models"
)

var successColor = color.New(color.FgGreen)

// LogFormatter renders bare message lines, dimming anything at debug level
// or below.
type LogFormatter struct {
}

func (*LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level >= log.DebugLevel {
		return []byte(color.New(color.FgWhite).Sprintf("%s\n", entry.Message)), nil
	} else {
		return []byte(color.New(color.Reset).Sprintf("%s\n", entry.Message)), nil
	}
}

// Print echoes the accepted configuration as key/value lines. The test
// repository file only appears when test mode is active.
func Print(cfg models.Config) {
	log.Info("=== Configuration parameters ===")
	log.Infof("Package: %s", cfg.Package)
	log.Infof("Version: %s", cfg.Version)
	log.Infof("Repository URL: %s", cfg.RepositoryURL)
	if cfg.TestMode {
		log.Info("Test mode: enabled")
	} else {
		log.Info("Test mode: disabled")
	}
	if cfg.TestMode && cfg.TestFile != "" {
		log.Infof("Test repository file: %s", cfg.TestFile)
	}
	log.Infof("Output file: %s", cfg.OutputFile)
	log.Info(strings.Repeat("=", 32))
}

// Acknowledge signals that the configuration was accepted and the tool is
// ready for the dependency collection stage.
func Acknowledge() {
	log.Infof("%s Configuration loaded successfully", successColor.Sprint("✓"))
	log.Infof("%s Ready to collect dependency data...", successColor.Sprint("✓"))
}
