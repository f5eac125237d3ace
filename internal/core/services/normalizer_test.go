package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

func testNormalizer() *VersionNormalizer {
	return NewVersionNormalizer(testConfig().Milestones)
}

func TestVersionNormalizer_Canonical(t *testing.T) {
	tests := []struct {
		milestone string
		want      string
	}{
		{milestone: "3.1.5", want: "3.2.5"},
		{milestone: "3.2.0", want: "3.2.3"},
		{milestone: "3.2.1", want: "3.2.3"},
		{milestone: "3.2.2", want: "3.2.3"},
		{milestone: "3.1.2", want: "3.2.3"},
		{milestone: "3.2.3", want: "3.2.3"},
		{milestone: "3.2.4", want: "3.2.4"},
		{milestone: " 3.2.6 ", want: "3.2.6"},
		{milestone: "4.0.0", want: "4.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.milestone, func(t *testing.T) {
			v, err := testNormalizer().Canonical(tt.milestone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestVersionNormalizer_CanonicalChainsRewrites(t *testing.T) {
	n := NewVersionNormalizer(domain.MilestoneConfig{
		Rewrites: []domain.MilestoneRewrite{
			{From: "3.0.", To: "3.1."},
			{From: "3.1.", To: "3.2."},
		},
	})

	v, err := n.Canonical("3.0.4")
	require.NoError(t, err)
	assert.Equal(t, "3.2.4", v.String())
}

func TestVersionNormalizer_CanonicalInvalid(t *testing.T) {
	for _, milestone := range []string{"", "next", "3.2", "3.2.x", "v3.2.3"} {
		t.Run(milestone, func(t *testing.T) {
			_, err := testNormalizer().Canonical(milestone)
			assert.ErrorIs(t, err, domain.ErrInvalidVersion)
		})
	}
}

func TestVersionNormalizer_Normalize(t *testing.T) {
	candidate := domain.Candidate{
		Module:      "knx",
		Description: "Fix bug",
		Milestone:   "3.1.5",
		Labels:      []string{"bug"},
		IssueNumber: 12,
		URL:         "https://github.com/smarthomej/addons/pull/12",
	}

	entry, reason := testNormalizer().Normalize(candidate, domain.MustParseReleaseTag("3.2.5"))

	require.Empty(t, reason)
	assert.Equal(t, domain.Version{Major: 3, Minor: 2, Micro: 5}, entry.Version)
	assert.Equal(t, "knx", entry.Module)
	assert.Equal(t, "Fix bug", entry.Description)
	assert.Equal(t, 12, entry.IssueNumber)

	// the entry owns its labels
	candidate.Labels[0] = "changed"
	assert.Equal(t, []string{"bug"}, entry.Labels)
}

func TestVersionNormalizer_TargetFilter(t *testing.T) {
	tests := []struct {
		name      string
		milestone string
		target    string
		reason    domain.RejectReason
	}{
		{name: "future release", milestone: "3.2.6", target: "3.2.5", reason: domain.RejectFutureRelease},
		{name: "same release", milestone: "3.2.5", target: "3.2.5", reason: ""},
		{name: "older release", milestone: "3.2.4", target: "3.2.5", reason: ""},
		{name: "collapsed below target", milestone: "3.2.1", target: "3.2.3", reason: ""},
		{name: "collapsed above target", milestone: "3.2.0", target: "3.2.2", reason: domain.RejectFutureRelease},
		{name: "double digit micro kept", milestone: "3.2.9", target: "3.2.10", reason: ""},
		{name: "double digit micro excluded", milestone: "3.2.10", target: "3.2.9", reason: domain.RejectFutureRelease},
		{name: "unparseable", milestone: "backlog", target: "3.2.5", reason: domain.RejectInvalidMilestone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Candidate{Module: "knx", Description: "x", Milestone: tt.milestone}
			_, reason := testNormalizer().Normalize(c, domain.MustParseReleaseTag(tt.target))
			assert.Equal(t, tt.reason, reason)
		})
	}
}
