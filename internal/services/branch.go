package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	"recruitment-form/internal/integrations"
	intdto "recruitment-form/internal/integrations/dto"
	"recruitment-form/internal/integrations/fallback"
	"recruitment-form/internal/repositories"
	"recruitment-form/pkg/metrics"
	"recruitment-form/pkg/utils"
)

const branchListCacheKey = "branches:list"

type BranchServiceInterface interface {
	GetBranches(ctx context.Context) *dto.BranchListResponse
	FetchBranches(ctx context.Context) (*dto.BranchListResponse, error)
	Health() dto.HealthDTO
}

type BranchServiceOptions struct {
	ServiceName  string
	QueryTimeout time.Duration
	CacheTTL     time.Duration
}

type BranchService struct {
	registry integrations.RegistryInterface
	cache    repositories.CacheRepositoryInterface
	opts     BranchServiceOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewBranchService: cache может быть nil, тогда каждый запрос идёт в хранилище.
func NewBranchService(
	registry integrations.RegistryInterface,
	cache repositories.CacheRepositoryInterface,
	opts BranchServiceOptions,
	logger *zap.Logger,
) *BranchService {
	if opts.ServiceName == "" {
		opts.ServiceName = "Branch Service"
	}
	return &BranchService{
		registry: registry,
		cache:    cache,
		opts:     opts,
		logger:   logger.Named("branch_service"),
		now:      time.Now,
	}
}

// GetBranches никогда не возвращает ошибку: при любом сбое хранилища отдаётся запасной список с note.
func (s *BranchService) GetBranches(ctx context.Context) *dto.BranchListResponse {
	if cached, ok := s.readCache(ctx); ok {
		metrics.DirectoryResponses.WithLabelValues(metrics.SourceCache).Inc()
		return dto.NewBranchListResponse(cached, "")
	}

	records, err := s.queryWarehouse(ctx)
	if err != nil {
		s.logger.Error("Ошибка получения филиалов из хранилища, отдаём запасной список", zap.Error(err))
		metrics.DirectoryResponses.WithLabelValues(metrics.SourceFallback).Inc()
		return dto.NewBranchListResponse(fallback.Branches(), fallback.Note)
	}

	s.writeCache(ctx, records)
	metrics.DirectoryResponses.WithLabelValues(metrics.SourceWarehouse).Inc()
	s.logger.Info("Филиалы получены", zap.Int("count", len(records)))
	return dto.NewBranchListResponse(records, "")
}

// FetchBranches - то же самое в форме источника для контроллера выбора филиала.
func (s *BranchService) FetchBranches(ctx context.Context) (*dto.BranchListResponse, error) {
	return s.GetBranches(ctx), nil
}

func (s *BranchService) Health() dto.HealthDTO {
	return dto.HealthDTO{
		Status:    "OK",
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Service:   s.opts.ServiceName,
	}
}

func (s *BranchService) queryWarehouse(ctx context.Context) ([]dto.BranchRecord, error) {
	provider, err := s.registry.GetActive()
	if err != nil {
		return nil, err
	}

	ctx, cancel := utils.WithOptionalTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	started := s.now()
	rows, err := provider.GetBranches(ctx)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.WarehouseQueryDuration.WithLabelValues(provider.Name(), result).Observe(s.now().Sub(started).Seconds())
	if err != nil {
		return nil, err
	}

	return s.toRecords(rows), nil
}

// toRecords сохраняет порядок хранилища и выбрасывает повторы по коду.
func (s *BranchService) toRecords(rows []intdto.IntegrationBranchDTO) []dto.BranchRecord {
	seen := make(map[string]struct{}, len(rows))
	records := make([]dto.BranchRecord, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.Code]; dup {
			s.logger.Warn("Повторяющийся код филиала пропущен", zap.String("code", row.Code))
			continue
		}
		seen[row.Code] = struct{}{}
		records = append(records, dto.BranchRecord{
			Code:        row.Code,
			Text:        row.Name,
			Coordinates: row.Coordinates,
			Province:    row.Province,
			Region:      row.Region,
			District:    row.District,
			Status:      row.Status,
		})
	}
	return records
}

func (s *BranchService) readCache(ctx context.Context) ([]dto.BranchRecord, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, branchListCacheKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("Не удалось прочитать кеш филиалов", zap.Error(err))
		}
		return nil, false
	}

	var records []dto.BranchRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("Повреждённая запись кеша филиалов", zap.Error(err))
		return nil, false
	}
	return records, true
}

func (s *BranchService) writeCache(ctx context.Context, records []dto.BranchRecord) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("Не удалось сериализовать филиалы для кеша", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, branchListCacheKey, payload, s.opts.CacheTTL); err != nil {
		s.logger.Warn("Не удалось записать кеш филиалов", zap.Error(err))
	}
}
