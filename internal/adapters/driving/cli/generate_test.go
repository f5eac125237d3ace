package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthomej/release-tools/internal/adapters/driving/cli/styles"
	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driving"
)

// mockReleaseService records the calls it receives.
type mockReleaseService struct {
	tag       domain.ReleaseTag
	artifacts []domain.Artifact
	report    *driving.RunReport
	err       error
}

func (m *mockReleaseService) Generate(_ context.Context, tag domain.ReleaseTag, artifacts ...domain.Artifact) (*driving.RunReport, error) {
	m.tag = tag
	m.artifacts = artifacts
	return m.report, m.err
}

// setupGenerateTest installs a factory returning svc and counts its calls.
func setupGenerateTest(svc *mockReleaseService) (*int, *Settings, func()) {
	oldFactory := newReleaseService
	calls := 0
	var got Settings
	newReleaseService = func(_ context.Context, s Settings) (driving.ReleaseService, error) {
		calls++
		got = s
		return svc, nil
	}
	return &calls, &got, func() {
		newReleaseService = oldFactory
		configPath, outputDir, dumpPath, strictRun, verbose = "", "", "", false, false
	}
}

func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func sampleReport() *driving.RunReport {
	return &driving.RunReport{
		RunID:    "run-1",
		Tag:      "3.2.3",
		Pages:    3,
		Fetched:  250,
		Included: 40,
		Rejected: map[domain.RejectReason]int{
			domain.RejectNotMerged:     200,
			domain.RejectFutureRelease: 10,
		},
		Written: []string{"target/Changelog.md"},
	}
}

func TestGenerateCommands_PassArtifacts(t *testing.T) {
	tests := []struct {
		command string
		want    []domain.Artifact
	}{
		{command: "changelog", want: []domain.Artifact{domain.ArtifactChangelog}},
		{command: "marketplace", want: []domain.Artifact{domain.ArtifactMarketplace}},
		{command: "release-notes", want: []domain.Artifact{domain.ArtifactReleaseNotes}},
		{command: "addons", want: []domain.Artifact{domain.ArtifactAddons}},
		{command: "all", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			svc := &mockReleaseService{report: sampleReport()}
			calls, _, cleanup := setupGenerateTest(svc)
			defer cleanup()

			out, err := execute(tt.command, "3.2.3")

			require.NoError(t, err)
			assert.Equal(t, 1, *calls)
			assert.Equal(t, "3.2.3", svc.tag.String())
			assert.Equal(t, tt.want, svc.artifacts)
			assert.Contains(t, out, "Release 3.2.3")
			assert.Contains(t, out, "wrote target/Changelog.md")
		})
	}
}

func TestGenerateCommands_RejectBadTagBeforeBuildingService(t *testing.T) {
	for _, args := range [][]string{
		{"changelog", "3.2"},
		{"release-notes", "v3.2.3"},
		{"marketplace", "3.2.3-SNAPSHOT"},
		{"all"},
		{"addons", "3.2.3", "3.2.4"},
	} {
		t.Run(args[0], func(t *testing.T) {
			svc := &mockReleaseService{}
			calls, _, cleanup := setupGenerateTest(svc)
			defer cleanup()

			_, err := execute(args...)

			require.Error(t, err)
			assert.Equal(t, 2, ExitCode(err))
			assert.Zero(t, *calls)
		})
	}
}

func TestGenerate_PassesSettings(t *testing.T) {
	svc := &mockReleaseService{report: sampleReport()}
	_, got, cleanup := setupGenerateTest(svc)
	defer cleanup()

	_, err := execute("changelog", "3.2.3", "-c", "release.yaml", "-o", "out", "--from-dump", "pulls.json", "--strict")

	require.NoError(t, err)
	assert.Equal(t, Settings{ConfigPath: "release.yaml", OutputDir: "out", DumpPath: "pulls.json", Strict: true}, *got)
}

func TestGenerate_ServiceErrorKeepsSummary(t *testing.T) {
	report := sampleReport()
	writeErr := errors.New("permission denied")
	report.Failed = []driving.ArtifactFailure{{Name: "releaseNotes-3.2.3.md", Err: writeErr}}
	svc := &mockReleaseService{report: report, err: writeErr}
	_, _, cleanup := setupGenerateTest(svc)
	defer cleanup()

	out, err := execute("all", "3.2.3")

	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, "failed releaseNotes-3.2.3.md: permission denied")
	assert.Contains(t, out, "wrote target/Changelog.md")
}

func TestGenerate_FactoryError(t *testing.T) {
	oldFactory := newReleaseService
	defer func() { newReleaseService = oldFactory }()
	newReleaseService = func(context.Context, Settings) (driving.ReleaseService, error) {
		return nil, domain.ErrInvalidConfig
	}

	_, err := execute("changelog", "3.2.3")

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Equal(t, 1, ExitCode(err))
}

func TestGenerate_NoFactory(t *testing.T) {
	oldFactory := newReleaseService
	defer func() { newReleaseService = oldFactory }()
	newReleaseService = nil

	_, err := execute("changelog", "3.2.3")

	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	report := sampleReport()
	report.Warnings = []string{"fetch page 3: timeout"}
	buf := new(bytes.Buffer)

	printSummary(buf, report, styles.Plain())

	want := "Release 3.2.3 (run run-1)\n" +
		"  fetched 250 pull requests in 3 pages: 40 included, 210 rejected\n" +
		"  rejected: future-release=10, not-merged=200\n" +
		"  wrote target/Changelog.md\n" +
		"  warning: fetch page 3: timeout\n"
	assert.Equal(t, want, buf.String())
}

func TestStylesFor_NonTerminalIsPlain(t *testing.T) {
	s := stylesFor(new(bytes.Buffer))
	assert.Equal(t, "x", s.Title.Render("x"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(domain.ErrInvalidReleaseTag))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
}
