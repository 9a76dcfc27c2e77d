package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

func requireCode(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func validPropertyRequest(name string, published bool) *PropertyRequest {
	return &PropertyRequest{
		Name:      name,
		Builder:   "Skyline Builders",
		Location:  "Sector 150, Noida",
		Type:      models.PropertyTypeResidential,
		Status:    models.PropertyStatusUnderConstruction,
		AreaSqft:  1450,
		Price:     8500000,
		Amenities: []string{"Clubhouse", "Pool"},
		Published: published,
	}
}

func newPropertyFixture() (*propertyService, *mockPropertyRepo, *memoryCache) {
	repo := &mockPropertyRepo{}
	c := newMemoryCache()
	svc := NewPropertyService(repo, c, testLogger()).(*propertyService)
	return svc, repo, c
}

func TestPropertyCreate_GeneratesUniqueSlugs(t *testing.T) {
	svc, _, _ := newPropertyFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, validPropertyRequest("Sky Heights, Tower B", true))
	require.NoError(t, err)
	assert.Equal(t, "sky-heights-tower-b", first.Slug)
	assert.Equal(t, "₹85,00,000", first.PriceLabel)

	second, err := svc.Create(ctx, validPropertyRequest("Sky Heights Tower-B", true))
	require.NoError(t, err)
	assert.Equal(t, "sky-heights-tower-b-2", second.Slug)
}

func TestPropertyCreate_ExplicitSlug(t *testing.T) {
	svc, _, _ := newPropertyFixture()

	req := validPropertyRequest("Sky Heights", true)
	req.Slug = "Sky Heights Noida"

	p, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "sky-heights-noida", p.Slug)
}

func TestPropertyCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PropertyRequest)
		field  string
	}{
		{"missing name", func(r *PropertyRequest) { r.Name = "" }, "name"},
		{"bad type", func(r *PropertyRequest) { r.Type = "villa" }, "type"},
		{"bad status", func(r *PropertyRequest) { r.Status = "sold" }, "status"},
		{"negative price", func(r *PropertyRequest) { r.Price = -1 }, "price"},
		{"bad image url", func(r *PropertyRequest) { r.Images = []string{"not a url"} }, "images[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newPropertyFixture()
			req := validPropertyRequest("Sky Heights", true)
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			appErr := requireCode(t, err, models.CodeInvalidInput)
			assert.Contains(t, appErr.Fields, tt.field)
			assert.Empty(t, repo.properties)
		})
	}
}

func TestPropertyListPublished_ForcesPublishedAndCaches(t *testing.T) {
	svc, repo, _ := newPropertyFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validPropertyRequest("Draft Residency", false))
	require.NoError(t, err)

	// A caller asking for unpublished rows still gets published ones only.
	params := listquery.Params{"published": "false"}

	result, err := svc.ListPublished(ctx, params)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Sky Heights", result.Data[0].Name)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Equal(t, 1, repo.listCalls)

	cached, err := svc.ListPublished(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, result.Data[0].Slug, cached.Data[0].Slug)
	assert.Equal(t, 1, repo.listCalls, "second read should be served from cache")

	_, err = svc.Create(ctx, validPropertyRequest("Lake View", true))
	require.NoError(t, err)

	fresh, err := svc.ListPublished(ctx, params)
	require.NoError(t, err)
	assert.Len(t, fresh.Data, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestPropertyListPublished_CacheErrorFallsBack(t *testing.T) {
	svc, repo, c := newPropertyFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)

	c.getErr = errors.New("redis down")

	result, err := svc.ListPublished(ctx, listquery.Params{})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, 1, repo.listCalls)
	assert.Empty(t, c.entries, "nothing is written when the version is unknown")
}

func TestPropertyListPublished_WriteDuringReadIsNotCached(t *testing.T) {
	svc, repo, c := newPropertyFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)

	// A write commits after the reader's query but before its cache write.
	repo.afterList = func() {
		_, err := svc.Create(ctx, validPropertyRequest("Lake View", true))
		require.NoError(t, err)
	}

	stale, err := svc.ListPublished(ctx, listquery.Params{})
	require.NoError(t, err)
	assert.Len(t, stale.Data, 1)
	assert.Equal(t, int64(2), c.versions["properties"])

	fresh, err := svc.ListPublished(ctx, listquery.Params{})
	require.NoError(t, err)
	assert.Len(t, fresh.Data, 2, "the page read before the write must not be served")
	assert.Equal(t, 2, repo.listCalls)
}

func TestPropertyList_AdminSeesDrafts(t *testing.T) {
	svc, _, _ := newPropertyFixture()
	ctx := context.Background()

	for _, name := range []string{"Sky Heights", "Lake View", "Green Acres"} {
		_, err := svc.Create(ctx, validPropertyRequest(name, name != "Lake View"))
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, listquery.Params{"published": "false"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Lake View", result.Data[0].Name)

	result, err = svc.List(ctx, listquery.Params{"search": "acres"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Green Acres", result.Data[0].Name)

	result, err = svc.List(ctx, listquery.Params{"limit": "2", "page": "2"})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

func TestPropertyGetPublishedBySlug(t *testing.T) {
	svc, _, _ := newPropertyFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validPropertyRequest("Draft Residency", false))
	require.NoError(t, err)

	p, err := svc.GetPublishedBySlug(ctx, "sky-heights")
	require.NoError(t, err)
	assert.Equal(t, "Sky Heights", p.Name)

	_, err = svc.GetPublishedBySlug(ctx, "draft-residency")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetPublishedBySlug(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPropertyUpdate_KeepsSlugUnlessGiven(t *testing.T) {
	svc, _, c := newPropertyFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)

	req := validPropertyRequest("Sky Heights Phase 2", true)
	req.Price = 0
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "sky-heights", updated.Slug)
	assert.Equal(t, "Sky Heights Phase 2", updated.Name)
	assert.Equal(t, "Price on request", updated.PriceLabel)

	req.Slug = "Phase Two"
	updated, err = svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "phase-two", updated.Slug)

	req.Slug = "!!!"
	_, err = svc.Update(ctx, created.ID, req)
	requireCode(t, err, models.CodeInvalidInput)

	assert.Contains(t, c.invalidated, models.PropertyResource.Name)
}

func TestPropertyUpdate_NotFound(t *testing.T) {
	svc, _, _ := newPropertyFixture()

	_, err := svc.Update(context.Background(), 42, validPropertyRequest("Sky Heights", true))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPropertyDelete_InvalidatesCaches(t *testing.T) {
	svc, repo, c := newPropertyFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, validPropertyRequest("Sky Heights", true))
	require.NoError(t, err)
	c.invalidated = nil

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.properties)
	assert.ElementsMatch(t, []string{models.PropertyResource.Name, models.VideoResource.Name}, c.invalidated)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), models.ErrNotFound)
}
