package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

func TestVideoCreate_ChecksProperty(t *testing.T) {
	properties := &mockPropertyRepo{properties: []*models.Property{{ID: 1, Name: "Sky Heights"}}}
	videos := &mockVideoRepo{}
	c := newMemoryCache()
	svc := NewVideoService(videos, properties, c, testLogger())
	ctx := context.Background()

	linked := int64(1)
	v, err := svc.Create(ctx, &VideoRequest{
		Title:      "Site walkthrough",
		VideoURL:   "https://youtube.com/watch?v=abc",
		PropertyID: &linked,
		Published:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, []string{models.VideoResource.Name}, c.invalidated)

	missing := int64(9)
	_, err = svc.Create(ctx, &VideoRequest{Title: "Orphan", VideoURL: "https://youtube.com/watch?v=def", PropertyID: &missing})
	appErr := requireCode(t, err, models.CodeInvalidInput)
	assert.Contains(t, appErr.Fields, "property_id")

	_, err = svc.Create(ctx, &VideoRequest{Title: "No URL"})
	appErr = requireCode(t, err, models.CodeInvalidInput)
	assert.Contains(t, appErr.Fields, "video_url")

	assert.Len(t, videos.videos, 1)
}

func TestVideoListPublished_FiltersByProperty(t *testing.T) {
	one, two := int64(1), int64(2)
	videos := &mockVideoRepo{videos: []*models.Video{
		{ID: 1, Title: "Tour A", PropertyID: &one, Published: true},
		{ID: 2, Title: "Tour B", PropertyID: &two, Published: true},
		{ID: 3, Title: "Draft", PropertyID: &one, Published: false},
	}}
	svc := NewVideoService(videos, &mockPropertyRepo{}, newMemoryCache(), testLogger())

	result, err := svc.ListPublished(context.Background(), listquery.Params{"property_id": "1"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Tour A", result.Data[0].Title)
}

func TestVideoUpdate(t *testing.T) {
	videos := &mockVideoRepo{videos: []*models.Video{{ID: 1, Title: "Tour", VideoURL: "https://a.example/v"}}}
	svc := NewVideoService(videos, &mockPropertyRepo{}, newMemoryCache(), testLogger())

	v, err := svc.Update(context.Background(), 1, &VideoRequest{Title: "Tour 2", VideoURL: "https://a.example/v2", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "Tour 2", v.Title)
	assert.True(t, videos.videos[0].Published)

	_, err = svc.Update(context.Background(), 5, &VideoRequest{Title: "x", VideoURL: "https://a.example/x"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func newBlogFixture(now time.Time) (*blogService, *mockBlogRepo) {
	repo := &mockBlogRepo{}
	svc := NewBlogService(repo, newMemoryCache(), testLogger()).(*blogService)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestBlogCreate_PublishStampsDate(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newBlogFixture(now)
	ctx := context.Background()

	post, err := svc.Create(ctx, &BlogRequest{Title: "Buying in Noida: 2026 Guide", Content: "...", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "buying-in-noida-2026-guide", post.Slug)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)

	draft, err := svc.Create(ctx, &BlogRequest{Title: "Buying in Noida: 2026 Guide", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, "buying-in-noida-2026-guide-2", draft.Slug)
	assert.Nil(t, draft.PublishedAt)
}

func TestBlogUpdate_RepublishKeepsOriginalDate(t *testing.T) {
	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newBlogFixture(first)
	ctx := context.Background()

	post, err := svc.Create(ctx, &BlogRequest{Title: "Guide", Content: "v1", Published: true})
	require.NoError(t, err)

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }

	unpublished, err := svc.Update(ctx, post.ID, &BlogRequest{Title: "Guide", Content: "v2"})
	require.NoError(t, err)
	assert.False(t, unpublished.Published)

	republished, err := svc.Update(ctx, post.ID, &BlogRequest{Title: "Guide", Content: "v3", Published: true})
	require.NoError(t, err)
	assert.True(t, republished.Published)
	assert.Equal(t, first, *republished.PublishedAt)
}

func TestBlogPublicReads(t *testing.T) {
	svc, repo := newBlogFixture(time.Now())
	repo.posts = []*models.BlogPost{
		{ID: 1, Slug: "live", Title: "Live", Category: "market", Published: true},
		{ID: 2, Slug: "draft", Title: "Draft", Category: "market"},
		{ID: 3, Slug: "tips", Title: "Tips", Category: "finance", Published: true},
	}
	ctx := context.Background()

	result, err := svc.ListPublished(ctx, listquery.Params{"category": "market"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "live", result.Data[0].Slug)
	assert.Equal(t, 10, result.Pagination.Limit)

	_, err = svc.GetPublishedBySlug(ctx, "draft")
	assert.ErrorIs(t, err, models.ErrNotFound)

	post, err := svc.GetPublishedBySlug(ctx, "tips")
	require.NoError(t, err)
	assert.Equal(t, "Tips", post.Title)
}
