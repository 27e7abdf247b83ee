package tagging

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/Didstopia/ghtag/internal/model"
)

// DefaultPrefix is the prefix stripped from tag names before parsing
const DefaultPrefix = "v"

// LatestVersion returns the tag with the highest semantic version.
// Tags without prefix or that are not strict semver are skipped. When two
// tags parse to the same version the one listed first wins.
func LatestVersion(tags []*model.Tag, prefix string, includePrerelease bool) (*model.Tag, *semver.Version, bool) {
	var (
		latestTag *model.Tag
		latest    *semver.Version
	)

	for _, tag := range tags {
		version, ok := ParseVersion(tag.Name, prefix)
		if !ok {
			continue
		}
		if version.Prerelease() != "" && !includePrerelease {
			continue
		}
		if latest == nil || version.GreaterThan(latest) {
			latestTag = tag
			latest = version
		}
	}

	return latestTag, latest, latestTag != nil
}

// ParseVersion parses a tag name such as v1.2.3 into a version
func ParseVersion(name, prefix string) (*semver.Version, bool) {
	if !strings.HasPrefix(name, prefix) {
		return nil, false
	}
	version, err := semver.StrictNewVersion(strings.TrimPrefix(name, prefix))
	if err != nil {
		return nil, false
	}
	return version, true
}
