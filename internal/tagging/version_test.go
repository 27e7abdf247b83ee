package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didstopia/ghtag/internal/model"
)

func tagsNamed(names ...string) []*model.Tag {
	tags := make([]*model.Tag, len(names))
	for i, name := range names {
		tags[i] = &model.Tag{Name: name}
	}
	return tags
}

func TestLatestVersion(t *testing.T) {
	tests := []struct {
		name              string
		tags              []string
		prefix            string
		includePrerelease bool
		expected          string
		found             bool
	}{
		{
			name:     "highest version regardless of order",
			tags:     []string{"v1.2.0", "v1.10.0", "v1.9.3"},
			prefix:   "v",
			expected: "v1.10.0",
			found:    true,
		},
		{
			name:     "skips non semver tags",
			tags:     []string{"latest", "v2", "v1.0.0", "release-3.0.0"},
			prefix:   "v",
			expected: "v1.0.0",
			found:    true,
		},
		{
			name:     "skips prereleases by default",
			tags:     []string{"v2.0.0-rc.1", "v1.5.0"},
			prefix:   "v",
			expected: "v1.5.0",
			found:    true,
		},
		{
			name:              "includes prereleases when asked",
			tags:              []string{"v2.0.0-rc.1", "v1.5.0"},
			prefix:            "v",
			includePrerelease: true,
			expected:          "v2.0.0-rc.1",
			found:             true,
		},
		{
			name:     "custom prefix",
			tags:     []string{"v9.0.0", "app-1.2.0", "app-1.3.0"},
			prefix:   "app-",
			expected: "app-1.3.0",
			found:    true,
		},
		{
			name:     "empty prefix",
			tags:     []string{"v9.0.0", "1.2.0"},
			prefix:   "",
			expected: "1.2.0",
			found:    true,
		},
		{
			name:   "no tags",
			tags:   nil,
			prefix: "v",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, version, found := LatestVersion(tagsNamed(tt.tags...), tt.prefix, tt.includePrerelease)

			assert.Equal(t, tt.found, found)
			if !tt.found {
				assert.Nil(t, tag)
				assert.Nil(t, version)
				return
			}
			require.NotNil(t, tag)
			assert.Equal(t, tt.expected, tag.Name)
		})
	}
}

func TestLatestVersion_FirstListedWinsTies(t *testing.T) {
	tags := tagsNamed("v1.0.0+build.2", "v1.0.0+build.1")

	tag, _, found := LatestVersion(tags, "v", false)

	require.True(t, found)
	assert.Same(t, tags[0], tag)
}

func TestParseVersion(t *testing.T) {
	version, ok := ParseVersion("v1.2.3", DefaultPrefix)
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version.String())

	_, ok = ParseVersion("1.2.3", DefaultPrefix)
	assert.False(t, ok)

	_, ok = ParseVersion("v1.2", DefaultPrefix)
	assert.False(t, ok)
}
