package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/content"
)

func TestCheckReportsProblems(t *testing.T) {
	r := &content.Registry{
		Profile:  content.Profile{Name: "Jane Doe"},
		Hero:     content.Hero{Photo: "jane.png"},
		NavLinks: []content.NavLink{{Label: "About", Target: "about"}, {Label: "Blog", Target: "blog"}},
		Projects: []content.ProjectEntry{{Title: "One", Image: "one.png"}},
	}
	images := assets.NewResolver(fstest.MapFS{"jane.png": {Data: []byte("x")}}, "/images")

	var out bytes.Buffer
	n := check(&out, r, images)
	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), `"Blog" points at missing section #blog`)
	assert.Contains(t, out.String(), `image "one.png" for One not found`)
	assert.NotContains(t, out.String(), "jane.png")
}

func TestCheckCleanContent(t *testing.T) {
	var out bytes.Buffer
	r := &content.Registry{NavLinks: []content.NavLink{{Label: "Skills", Target: "skills"}}}
	assert.Zero(t, check(&out, r, assets.NewResolver(fstest.MapFS{}, "/images")))
	assert.Equal(t, "content ok\n", out.String())
}

func TestLoadRegistryPrefersDatabase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("profile:\n  name: From File\n"), 0o644))

	r, err := loadRegistry(ctx, yamlPath, "")
	require.NoError(t, err)
	assert.Equal(t, "From File", r.Profile.Name)

	dbPath := filepath.Join(dir, "content.db")
	store, err := content.OpenStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, &content.Registry{Profile: content.Profile{Name: "From DB"}}))
	require.NoError(t, store.Close())

	r, err = loadRegistry(ctx, yamlPath, dbPath)
	require.NoError(t, err)
	assert.Equal(t, "From DB", r.Profile.Name)
}

func TestLoadRegistryDefault(t *testing.T) {
	r, err := loadRegistry(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, r.Profile.Name)
	assert.NotEmpty(t, r.NavLinks)
}

func TestSeedRequiresDatabase(t *testing.T) {
	rootCmd.SetArgs([]string{"seed", "--db", ""})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--db is required")
}

func TestSeedWritesStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	rootCmd.SetArgs([]string{"seed", "--db", dbPath})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Seeded "+dbPath)

	store, err := content.OpenStore(dbPath)
	require.NoError(t, err)
	defer store.Close()
	r, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content.Default().Profile.Name, r.Profile.Name)
	assert.Len(t, r.Projects, len(content.Default().Projects))
}
