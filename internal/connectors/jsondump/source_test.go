package jsondump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

func pullJSON(number int, title, milestone string) string {
	return fmt.Sprintf(`{
  "id": %d,
  "number": %d,
  "url": "https://api.github.com/repos/smarthomej/addons/pulls/%d",
  "html_url": "https://github.com/smarthomej/addons/pull/%d",
  "title": %q,
  "merged_at": "2022-03-14T09:30:00Z",
  "milestone": {"title": %q},
  "labels": [{"name": "bug"}]
}`, 1000+number, number, number, number, title, milestone)
}

func writeDump(t *testing.T, path string, from, to int) {
	t.Helper()
	items := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		items = append(items, pullJSON(n, "[knx] Change", "3.2.3"))
	}
	require.NoError(t, os.WriteFile(path, []byte("["+strings.Join(items, ",")+"]"), 0o644))
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulls.json")
	writeDump(t, path, 1, 3)

	src, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, 3, src.Len())
	assert.Equal(t, "dump:"+path, src.Name())

	page, err := src.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, 1, page[0].Number)
	assert.Equal(t, "[knx] Change", page[0].TitleText())
	assert.Equal(t, "3.2.3", page[0].Milestone())
	assert.Equal(t, []string{"bug"}, page[0].Labels)
	assert.True(t, page[0].IsMerged())
}

func TestOpen_DirectoryPagesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, filepath.Join(dir, "page-02.json"), 101, 150)
	writeDump(t, filepath.Join(dir, "page-01.json"), 1, 100)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	src, err := Open(dir)
	require.NoError(t, err)
	require.Equal(t, 150, src.Len())

	ctx := context.Background()
	first, err := src.FetchPage(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first, 100)
	assert.Equal(t, 1, first[0].Number)

	second, err := src.FetchPage(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second, 50)
	assert.Equal(t, 101, second[0].Number)

	third, err := src.FetchPage(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestOpen_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

		_, err := Open(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestFetchPage_InvalidPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulls.json")
	writeDump(t, path, 1, 1)
	src, err := Open(path)
	require.NoError(t, err)

	_, err = src.FetchPage(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
