package content

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	want := Default()

	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, Default()))
	require.NoError(t, s.Save(ctx, &Registry{
		NavLinks: []NavLink{{Label: "Projects", Target: "projects"}},
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []NavLink{{Label: "Projects", Target: "projects"}}, got.NavLinks)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.Skills)
}

func TestStoreEmpty(t *testing.T) {
	got, err := openTestStore(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.NavLinks)
	assert.Nil(t, got.Copy)
}
