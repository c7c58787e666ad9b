package integrations

import (
	"context"

	"recruitment-form/internal/integrations/dto"
)

// DataProvider - источник справочника филиалов (BigQuery, Postgres, ...).
type DataProvider interface {
	Name() string
	GetBranches(ctx context.Context) ([]dto.IntegrationBranchDTO, error)
}
