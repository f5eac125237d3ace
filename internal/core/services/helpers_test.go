package services

import (
	"strconv"
	"time"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

var mergedAt = time.Date(2022, 3, 14, 9, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// mergedPR builds a merged record with a title and milestone.
func mergedPR(number int, title, milestone string, labels ...string) domain.PullRequestRecord {
	ts := mergedAt
	return domain.PullRequestRecord{
		ID:             int64(1000 + number),
		Number:         number,
		Title:          strPtr(title),
		MergedAt:       &ts,
		MilestoneTitle: strPtr(milestone),
		Labels:         labels,
		HTMLURL:        "https://github.com/smarthomej/addons/pull/" + strconv.Itoa(number),
		APIURL:         "https://api.github.com/repos/smarthomej/addons/pulls/" + strconv.Itoa(number),
	}
}

func testModules() []domain.Module {
	return []domain.Module{
		{ID: "binding.knx"},
		{ID: "binding.snmp", Note: "### Version 3.1.0\n\n* enhancement: Initial contribution\n"},
		{ID: "transform.math"},
	}
}

func testConfig() *domain.ReleaseConfig {
	return &domain.ReleaseConfig{
		Repository: domain.RepositoryConfig{Owner: "smarthomej", Name: "addons"},
		Publish: domain.PublishConfig{
			Distribution:         "SmartHome/J",
			BundlePrefix:         "org.smarthomej.",
			DocsURL:              "https://docs.smarthomej.org/{tag}/{bundle}.html",
			DownloadURL:          "https://repo1.maven.org/maven2/org/smarthomej/addons/bundles/{bundle}/{tag}/{bundle}-{tag}.kar",
			InfrastructureModule: "infrastructure",
			AdministrativeLabels: []string{"community-approved", "communityapproved"},
			AddonIDPrefix:        "org-smarthome-",
			AddonAuthor:          "SmartHome/J",
		},
		Milestones: domain.MilestoneConfig{
			Rewrites: []domain.MilestoneRewrite{{From: "3.1.", To: "3.2."}},
			Collapse: []domain.MilestoneCollapse{{Versions: []string{"3.2.0", "3.2.1", "3.2.2"}, Into: "3.2.3"}},
		},
		Modules: testModules(),
	}
}
