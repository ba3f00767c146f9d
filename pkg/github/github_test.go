package github

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoPath(t *testing.T) {
	c := NewClient("octocat", "resume-optimizer")
	assert.Equal(t, "octocat/resume-optimizer", c.RepoPath())
	assert.Equal(t, "octocat", c.Owner())
	assert.Equal(t, "resume-optimizer", c.Repo())
}

func TestBadges(t *testing.T) {
	badges := Badges("octocat", "resume-optimizer")

	assert.Contains(t, badges, "img.shields.io/github/license/octocat/resume-optimizer")
	assert.Contains(t, badges, "img.shields.io/github/stars/octocat/resume-optimizer")
	assert.Contains(t, badges, "React-18-blue")
	assert.Contains(t, badges, "Vite-5-purple")
	assert.Contains(t, badges, "Claude-API-orange")
	assert.NotContains(t, badges, "\n", "badges render as a single line")
}

func TestSpliceBadgesInsertsAfterHeading(t *testing.T) {
	readme := "# Resume Optimizer\n\nAI-powered resume optimization.\n"
	badges := Badges("octocat", "resume-optimizer")

	updated := SpliceBadges(readme, badges)
	lines := strings.Split(updated, "\n")

	assert.Equal(t, "# Resume Optimizer", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, badges, lines[2])
	assert.Contains(t, updated, "AI-powered resume optimization.")
}

func TestSpliceBadgesIsIdempotent(t *testing.T) {
	readme := "# Tool\n\nBody.\n"
	badges := Badges("octocat", "tool")

	once := SpliceBadges(readme, badges)
	twice := SpliceBadges(once, badges)
	assert.Equal(t, once, twice)
}

func TestSpliceBadgesNeedsHeadingAnchor(t *testing.T) {
	readme := "Just some text without a heading.\n"
	assert.Equal(t, readme, SpliceBadges(readme, Badges("o", "r")))
}

func TestSpliceBadgesIgnoresSubheadings(t *testing.T) {
	readme := "## Usage\n\ntext\n\n# Title\n\nbody\n"
	updated := SpliceBadges(readme, "BADGES")

	lines := strings.Split(updated, "\n")
	assert.Equal(t, "## Usage", lines[0], "subheadings are not anchors")
	assert.Equal(t, "# Title", lines[4])
	assert.Equal(t, "BADGES", lines[6])
}

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		output string
		want   bool
	}{
		{"gh: Not Found (HTTP 404)", true},
		{"GraphQL: Could not resolve to a Repository with the name 'o/r'.", true},
		{"HTTP 403: rate limit exceeded", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isNotFound(tc.output), "output: %q", tc.output)
	}
}
