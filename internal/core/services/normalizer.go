package services

import (
	"strings"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

// VersionNormalizer maps milestone titles onto canonical release versions.
//
// Rules, in order:
//  1. every rewrite whose prefix matches replaces that prefix (rewrites chain)
//  2. collapse rules map enumerated early versions onto one shipped version
//  3. the result must parse as x.y.z
type VersionNormalizer struct {
	rewrites []domain.MilestoneRewrite
	collapse map[string]string
}

// NewVersionNormalizer creates a normalizer from the milestone table.
func NewVersionNormalizer(cfg domain.MilestoneConfig) *VersionNormalizer {
	collapse := make(map[string]string)
	for _, rule := range cfg.Collapse {
		for _, v := range rule.Versions {
			collapse[strings.TrimSpace(v)] = rule.Into
		}
	}
	return &VersionNormalizer{
		rewrites: append([]domain.MilestoneRewrite(nil), cfg.Rewrites...),
		collapse: collapse,
	}
}

// Canonical returns the release version a milestone belongs to.
func (n *VersionNormalizer) Canonical(milestone string) (domain.Version, error) {
	m := strings.TrimSpace(milestone)

	for _, rw := range n.rewrites {
		if strings.HasPrefix(m, rw.From) {
			m = rw.To + m[len(rw.From):]
		}
	}

	if into, ok := n.collapse[m]; ok {
		m = into
	}

	return domain.ParseVersion(m)
}

// Normalize turns a candidate into an entry for the target release.
// Entries whose micro version is above the target's belong to a future
// release and are rejected; micro versions compare as numbers.
func (n *VersionNormalizer) Normalize(c domain.Candidate, target domain.ReleaseTag) (domain.ClassifiedEntry, domain.RejectReason) {
	version, err := n.Canonical(c.Milestone)
	if err != nil {
		return domain.ClassifiedEntry{}, domain.RejectInvalidMilestone
	}

	if version.Micro > target.Version().Micro {
		return domain.ClassifiedEntry{}, domain.RejectFutureRelease
	}

	return domain.NewClassifiedEntry(c.Module, version, c.Description, c.Labels, c.IssueNumber, c.URL), ""
}
