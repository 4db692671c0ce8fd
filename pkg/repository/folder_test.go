package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedstash/pkg/domain"
)

func TestFolderRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	tech, err := repos.Folder.CreateFolder(ctx, "tech")
	require.NoError(t, err)
	assert.NotZero(t, tech.ID)
	news, err := repos.Folder.CreateFolder(ctx, "News")
	require.NoError(t, err)

	_, err = repos.Folder.CreateFolder(ctx, "tech")
	assert.ErrorIs(t, err, domain.ErrConflict)

	folders, err := repos.Folder.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "News", folders[0].Name)
	assert.Equal(t, "tech", folders[1].Name)

	require.NoError(t, repos.Folder.RenameFolder(ctx, tech.ID, "Technology"))
	got, err := repos.Folder.GetFolder(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "Technology", got.Name)

	assert.ErrorIs(t, repos.Folder.RenameFolder(ctx, tech.ID, "News"), domain.ErrConflict)

	t.Run("delete makes feeds unfiled", func(t *testing.T) {
		feed := createTestFeed(t, repos, "https://example.com/rss")
		require.NoError(t, repos.Feed.MoveFeed(ctx, feed.ID, &news.ID))
		require.NoError(t, repos.Folder.DeleteFolder(ctx, news.ID))

		f, err := repos.Feed.GetFeed(ctx, feed.ID)
		require.NoError(t, err)
		assert.Nil(t, f.FolderID)
	})

	var nf *domain.NotFoundError
	_, err = repos.Folder.GetFolder(ctx, news.ID)
	assert.True(t, errors.As(err, &nf))
	assert.True(t, errors.As(repos.Folder.DeleteFolder(ctx, news.ID), &nf))
	assert.True(t, errors.As(repos.Folder.RenameFolder(ctx, 999, "x"), &nf))
}
