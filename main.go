package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"depviz/gate"
	"depviz/models"
	"depviz/report"
)

// errInvalidConfig marks a run that already reported its errors; main only
// has to map it to a non-zero exit.
var errInvalidConfig = errors.New("invalid configuration")

func newRootCmd(cfg *models.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depviz",
		Short: "A dependency graph visualizer for Maven packages",
		Long: `Fetches the dependency graph of a Maven package and renders it
as an image. This stage validates the configuration and echoes it back.`,
		Example: `  depviz -p com.example:my-app -v 1.0.0
  depviz --package org.springframework:spring-core --version 5.3.0 --output dependencies.png`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parsing succeeded, so any failure past this point is ours
			// and usage text would only add noise.
			cmd.SilenceUsage = true
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Package,
		"package",
		"p",
		"",
		"The package to analyze (format: groupId:artifactId)")
	cmd.Flags().StringVarP(&cfg.Version,
		"version",
		"v",
		"",
		"The package version")
	cmd.Flags().StringVarP(&cfg.RepositoryURL,
		"url",
		"u",
		gate.DefaultRepositoryURL,
		"URL of the Maven repository to use")
	cmd.Flags().BoolVarP(&cfg.TestMode,
		"test-mode",
		"t",
		false,
		"Work against a local test repository")
	cmd.Flags().StringVarP(&cfg.TestFile,
		"file",
		"f",
		"",
		"Path to the test repository file (test mode only)")
	cmd.Flags().StringVarP(&cfg.OutputFile,
		"output",
		"o",
		gate.DefaultOutputFile,
		"Name of the generated graph image")
	cmd.Flags().StringVar(&cfg.LogLevel,
		"logging",
		"INFO",
		"The level of logging to use")
	cmd.Flags().StringVar(&cfg.LargeThreshold,
		"large-threshold",
		gate.DefaultLargeThreshold,
		"Dependency size above which a graph node will be highlighted")
	cmd.MarkFlagRequired("package")
	cmd.MarkFlagRequired("version")

	return cmd
}

// run drives the linear pipeline: resolve, validate, report, acknowledge.
// Resolve and Check failures are accumulated and reported together.
func run(cfg *models.Config) error {
	errs := gate.Resolve(cfg)
	errs = append(errs, gate.Check(*cfg)...)
	if len(errs) > 0 {
		log.Error("Validation errors:")
		for _, err := range errs {
			log.Errorf("  - %s", err)
		}
		return errInvalidConfig
	}

	report.Print(*cfg)
	report.Acknowledge()
	return nil
}

func main() {
	log.SetFormatter(&report.LogFormatter{})
	log.SetOutput(os.Stdout)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		log.Error("Interrupted by user")
		os.Exit(1)
	}()

	cfg := models.Config{}
	if err := newRootCmd(&cfg).Execute(); err != nil {
		if !errors.Is(err, errInvalidConfig) {
			log.Errorf("Argument error: %s", err)
		}
		os.Exit(1)
	}
}
