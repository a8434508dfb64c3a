package main

import (
	"flag"

	"github.com/danmuck/scaffoldctl/internal/logging"
	"github.com/danmuck/scaffoldctl/internal/manifest"
	"github.com/danmuck/scaffoldctl/internal/scaffold"
)

func main() {
	noDemo := flag.Bool("no-demo", false, "scaffold the configured paths as-is instead of under the demo sandbox")
	dryRun := flag.Bool("dry-run", false, "show what would be created without writing files")
	overwrite := flag.Bool("overwrite", false, "overwrite existing files if present")
	manifestPath := flag.String("manifest", "", "toml or yaml manifest declaring the file list (defaults to the builtin starter layout)")
	baseDir := flag.String("base-dir", "", "directory relative paths resolve against (defaults to the working directory)")
	flag.Parse()

	logger := logging.New("scaffoldctl", logging.ProfileRuntime)

	descriptors := builtinDescriptors()
	defaultContent := ""
	if *manifestPath != "" {
		m, err := manifest.Load(*manifestPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load manifest")
		}
		logger.Info().Str("path", *manifestPath).Int("files", len(m.Files)).Msg("loaded manifest")
		descriptors = m.Descriptors()
		defaultContent = m.DefaultContent
	}

	if *noDemo {
		logger.Info().Msg("creating files directly against the base directory")
	} else {
		logger.Info().Str("dir", demoDir).Msg("running demo: creating files under sandbox directory")
		descriptors = demoDescriptors(descriptors)
	}

	s, err := scaffold.New(scaffold.Config{
		BaseDir:        *baseDir,
		DryRun:         *dryRun,
		Overwrite:      *overwrite,
		DefaultContent: defaultContent,
		Logger:         &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize scaffolder")
	}

	outcomes := s.Create(descriptors)
	created := scaffold.Created(outcomes)
	logger.Info().Int("created", len(created)).Msg("finished")
}
