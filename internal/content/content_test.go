package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryKeepsDeclaredOrder(t *testing.T) {
	r := Default()

	var labels []string
	for _, n := range r.NavLinks {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{"About", "Skills", "Projects", "Education"}, labels)

	require.NotEmpty(t, r.Projects)
	assert.Equal(t, "NK Consultancy", r.Projects[0].Title)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, r.Projects[0].Tags[:3])

	require.Len(t, r.Experience, 1)
	assert.Len(t, r.Experience[0].Contributions, 7)
	assert.Equal(t, "Next.js", r.Experience[0].TechStack[0].Name)
	assert.Equal(t, "Hostinger", r.Experience[0].TechStack[3].Name)

	assert.Equal(t, "#", r.Contact[2].Href)
}

func TestParseEmptyDocument(t *testing.T) {
	r, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, r.NavLinks)
	assert.Empty(t, r.SkillGroups())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("nav_links:\n  - {label: About, taget: about}\n"))
	require.Error(t, err)
}

func TestParsePassesMalformedEntriesThrough(t *testing.T) {
	r, err := Parse([]byte("socials:\n  - {platform: GitHub, url: \"\"}\n"))
	require.NoError(t, err)
	require.Len(t, r.Socials, 1)
	assert.Equal(t, "", r.Socials[0].URL)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nav_links:\n  - {label: Work, target: projects}\n"), 0o600))

	r, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []NavLink{{Label: "Work", Target: "projects"}}, r.NavLinks)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	require.Error(t, err)

	def, err := FileSource{}.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, def.Skills)
}

func TestSkillGroups(t *testing.T) {
	r := &Registry{Skills: []SkillEntry{
		{Name: "Git", Category: CategoryTools},
		{Name: "Go", Category: CategoryBackend},
		{Name: "Figma", Category: "Design"},
		{Name: "React", Category: CategoryFrontend},
		{Name: "Node.js", Category: CategoryBackend},
	}}

	groups := r.SkillGroups()
	require.Len(t, groups, 4)
	assert.Equal(t, CategoryFrontend, groups[0].Category)
	assert.Equal(t, CategoryBackend, groups[1].Category)
	assert.Equal(t, "Go", groups[1].Skills[0].Name)
	assert.Equal(t, "Node.js", groups[1].Skills[1].Name)
	assert.Equal(t, CategoryTools, groups[2].Category)
	assert.Equal(t, Category("Design"), groups[3].Category)
}

func TestNavbarSocialsAndDanglingLinks(t *testing.T) {
	r := Default()

	var platforms []string
	for _, s := range r.NavbarSocials() {
		platforms = append(platforms, s.Platform)
	}
	assert.Equal(t, []string{"GitHub", "LinkedIn"}, platforms)

	dangling := r.DanglingNavLinks([]string{"about", "skills", "projects"})
	assert.Equal(t, []NavLink{{Label: "Education", Target: "education"}}, dangling)
}

func TestStyleForTag(t *testing.T) {
	s, ok := StyleForTag("React")
	assert.True(t, ok)
	assert.Equal(t, IconReact, s.Icon)

	s, ok = StyleForTag("Razorpay")
	assert.True(t, ok)
	assert.Equal(t, IconNone, s.Icon)

	s, ok = StyleForTag("Vercel Serverless Functions")
	assert.False(t, ok)
	assert.Equal(t, IconNone, s.Icon)
	assert.Equal(t, DefaultTagColor, s.Color)
}

func TestParseIcon(t *testing.T) {
	assert.Equal(t, IconGithub, ParseIcon("github"))
	assert.Equal(t, IconNone, ParseIcon("myspace"))
	assert.Equal(t, IconNone, ParseIcon(""))
}

func TestIsDisabled(t *testing.T) {
	assert.True(t, IsDisabled("#"))
	assert.False(t, IsDisabled("#about"))
	assert.False(t, IsDisabled(""))
}
