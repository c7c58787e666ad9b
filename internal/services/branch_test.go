package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	"recruitment-form/internal/integrations"
	intdto "recruitment-form/internal/integrations/dto"
	"recruitment-form/internal/integrations/fallback"
	"recruitment-form/internal/integrations/mock"
	"recruitment-form/internal/repositories"
)

// stubCache - кеш в map для тестов; срок жизни не отслеживается.
type stubCache struct {
	entries map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]string{}}
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	default:
		return errors.New("unsupported cache value")
	}
	return nil
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.entries[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *stubCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func newBranchServiceWithProvider(t *testing.T, provider *mock.MockProvider, cache repositories.CacheRepositoryInterface) *BranchService {
	t.Helper()
	reg := integrations.NewRegistry()
	if provider != nil {
		require.NoError(t, reg.Register(provider))
		require.NoError(t, reg.SetActive(provider.Name()))
	}
	return NewBranchService(reg, cache, BranchServiceOptions{
		ServiceName:  "Branch Service",
		QueryTimeout: time.Second,
		CacheTTL:     time.Minute,
	}, zap.NewNop())
}

func TestBranchService_GetBranches_LiveData(t *testing.T) {
	provider := mock.NewMockProvider(
		intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่", Province: "เชียงใหม่", Status: "เปิดทำการ"},
		intdto.IntegrationBranchDTO{Code: "PKT01", Name: "ภูเก็ต", Status: "รอเปิดทำการ"},
	)
	svc := newBranchServiceWithProvider(t, provider, nil)

	resp := svc.GetBranches(context.Background())

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Empty(t, resp.Note)
	assert.Equal(t, dto.BranchRecord{Code: "CNX01", Text: "เชียงใหม่", Province: "เชียงใหม่", Status: "เปิดทำการ"}, resp.Data[0])
	assert.Equal(t, "PKT01", resp.Data[1].Code)
}

func TestBranchService_GetBranches_DropsDuplicateCodes(t *testing.T) {
	provider := mock.NewMockProvider(
		intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่"},
		intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่ 2"},
	)
	svc := newBranchServiceWithProvider(t, provider, nil)

	resp := svc.GetBranches(context.Background())

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "เชียงใหม่", resp.Data[0].Text)
}

func TestBranchService_GetBranches_FallbackOnProviderError(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Err = errors.New("bigquery: permission denied")
	svc := newBranchServiceWithProvider(t, provider, nil)

	resp := svc.GetBranches(context.Background())

	assert.True(t, resp.Success)
	assert.Equal(t, 9, resp.Count)
	assert.Equal(t, fallback.Note, resp.Note)
	assert.Equal(t, fallback.Branches(), resp.Data)
}

func TestBranchService_GetBranches_FallbackWithoutActiveProvider(t *testing.T) {
	svc := newBranchServiceWithProvider(t, nil, nil)

	resp := svc.GetBranches(context.Background())

	assert.Equal(t, 9, resp.Count)
	assert.Equal(t, fallback.Note, resp.Note)
}

func TestBranchService_GetBranches_EmptyWarehouseIsLive(t *testing.T) {
	svc := newBranchServiceWithProvider(t, mock.NewMockProvider(), nil)

	resp := svc.GetBranches(context.Background())

	assert.True(t, resp.Success)
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Note)
}

func TestBranchService_GetBranches_UsesCache(t *testing.T) {
	provider := mock.NewMockProvider(intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่"})
	cache := newStubCache()
	svc := newBranchServiceWithProvider(t, provider, cache)

	first := svc.GetBranches(context.Background())
	second := svc.GetBranches(context.Background())

	assert.Equal(t, 1, provider.Calls())
	assert.Equal(t, first.Data, second.Data)
}

func TestBranchService_GetBranches_WithoutCacheQueriesEveryTime(t *testing.T) {
	provider := mock.NewMockProvider(intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่"})
	svc := newBranchServiceWithProvider(t, provider, nil)

	svc.GetBranches(context.Background())
	svc.GetBranches(context.Background())

	assert.Equal(t, 2, provider.Calls())
}

func TestBranchService_GetBranches_FallbackIsNotCached(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Err = errors.New("timeout")
	cache := newStubCache()
	svc := newBranchServiceWithProvider(t, provider, cache)

	svc.GetBranches(context.Background())
	provider.Err = nil
	provider.Branches = []intdto.IntegrationBranchDTO{{Code: "CNX01", Name: "เชียงใหม่"}}

	resp := svc.GetBranches(context.Background())

	assert.Equal(t, 2, provider.Calls())
	assert.Equal(t, 1, resp.Count)
	assert.Empty(t, resp.Note)
}

func TestBranchService_GetBranches_CorruptCacheIsIgnored(t *testing.T) {
	provider := mock.NewMockProvider(intdto.IntegrationBranchDTO{Code: "CNX01", Name: "เชียงใหม่"})
	cache := newStubCache()
	require.NoError(t, cache.Set(context.Background(), branchListCacheKey, "{not json", time.Minute))
	svc := newBranchServiceWithProvider(t, provider, cache)

	resp := svc.GetBranches(context.Background())

	assert.Equal(t, 1, provider.Calls())
	assert.Equal(t, "CNX01", resp.Data[0].Code)
}

func TestBranchService_FetchBranchesNeverFails(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Err = context.DeadlineExceeded
	svc := newBranchServiceWithProvider(t, provider, nil)

	resp, err := svc.FetchBranches(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data)
}

func TestBranchService_Health(t *testing.T) {
	svc := newBranchServiceWithProvider(t, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 30, 0, 0, time.FixedZone("ICT", 7*3600)) }

	h := svc.Health()

	assert.Equal(t, "OK", h.Status)
	assert.Equal(t, "Branch Service", h.Service)
	assert.Equal(t, "2025-03-01T05:30:00.000Z", h.Timestamp)
}
