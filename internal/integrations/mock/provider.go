package mock

import (
	"context"
	"sync/atomic"

	"recruitment-form/internal/integrations/dto"
)

// MockProvider отдаёт заранее заданные строки или заданную ошибку.
type MockProvider struct {
	Branches []dto.IntegrationBranchDTO
	Err      error

	calls atomic.Int32
}

func NewMockProvider(branches ...dto.IntegrationBranchDTO) *MockProvider {
	return &MockProvider{Branches: branches}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) GetBranches(ctx context.Context) ([]dto.IntegrationBranchDTO, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]dto.IntegrationBranchDTO, len(m.Branches))
	copy(out, m.Branches)
	return out, nil
}

// Calls - сколько раз к провайдеру ходили за данными.
func (m *MockProvider) Calls() int {
	return int(m.calls.Load())
}
