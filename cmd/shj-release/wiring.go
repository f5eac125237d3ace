package main

import (
	"context"
	"fmt"

	configfile "github.com/smarthomej/release-tools/internal/adapters/driven/config/file"
	"github.com/smarthomej/release-tools/internal/adapters/driven/readme"
	sinkfile "github.com/smarthomej/release-tools/internal/adapters/driven/sink/file"
	"github.com/smarthomej/release-tools/internal/adapters/driving/cli"
	"github.com/smarthomej/release-tools/internal/connectors/github"
	"github.com/smarthomej/release-tools/internal/connectors/jsondump"
	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driven"
	"github.com/smarthomej/release-tools/internal/core/ports/driving"
	"github.com/smarthomej/release-tools/internal/core/services"
	"github.com/smarthomej/release-tools/internal/logger"
)

// buildReleaseService wires configuration, source, sink and README reader
// into a release service.
func buildReleaseService(ctx context.Context, s cli.Settings) (driving.ReleaseService, error) {
	cfg, err := configfile.Load(s.ConfigPath)
	if err != nil {
		return nil, err
	}

	dir := cfg.Output.Directory
	if s.OutputDir != "" {
		dir = s.OutputDir
	}

	source, err := buildSource(ctx, s, cfg.Repository)
	if err != nil {
		return nil, err
	}
	logger.Info("source %s, output %s", source.Name(), dir)

	return services.NewReleaseService(cfg, source, sinkfile.NewSink(dir),
		services.WithReadmeSource(readme.NewReader(cfg.Publish.BundlesDirectory, cfg.Publish.BundlePrefix)),
		services.WithStrictFetch(s.Strict),
	), nil
}

// buildSource reads from a dump when one is given, from GitHub otherwise.
func buildSource(ctx context.Context, s cli.Settings, repo domain.RepositoryConfig) (driven.PullRequestSource, error) {
	if s.DumpPath != "" {
		src, err := jsondump.Open(s.DumpPath)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	src, err := github.New(ctx, github.ConfigFromRepository(repo, nil))
	if err != nil {
		return nil, fmt.Errorf("github source: %w", err)
	}
	return src, nil
}
