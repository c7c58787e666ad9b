package bigquery

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"recruitment-form/internal/entities"
	"recruitment-form/internal/integrations"
	"recruitment-form/internal/integrations/dto"
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Options struct {
	ProjectID string
	Dataset   string
	Table     string
	Location  string
	Statuses  []string
	Limit     int
}

// Provider читает справочник филиалов из BigQuery.
type Provider struct {
	client *bigquery.Client
	opts   Options
	query  string
	logger *zap.Logger
}

// masterdataRow - строка результата запроса, колонки совпадают с таблицей хранилища.
type masterdataRow struct {
	BranchCode   bigquery.NullString `bigquery:"branch_code"`
	BranchNameTH bigquery.NullString `bigquery:"branchname_th"`
	Coordinates  bigquery.NullString `bigquery:"coordinates"`
	Province     bigquery.NullString `bigquery:"province"`
	Region       bigquery.NullString `bigquery:"region"`
	District     bigquery.NullString `bigquery:"district"`
	BranchStatus bigquery.NullString `bigquery:"branch_status"`
}

func New(ctx context.Context, opts Options, logger *zap.Logger) (integrations.DataProvider, error) {
	query, err := BuildQuery(opts)
	if err != nil {
		return nil, err
	}

	client, err := bigquery.NewClient(ctx, opts.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент BigQuery: %w", err)
	}

	return &Provider{
		client: client,
		opts:   opts,
		query:  query,
		logger: logger.Named("bigquery_provider"),
	}, nil
}

func (p *Provider) Name() string {
	return "bigquery"
}

// BuildQuery собирает SQL. Имена датасета и таблицы нельзя передать параметром,
// поэтому они проверяются по белому списку символов.
func BuildQuery(opts Options) (string, error) {
	for _, ident := range []string{opts.ProjectID, opts.Dataset, opts.Table} {
		if !identifierRegexp.MatchString(ident) {
			return "", fmt.Errorf("недопустимый идентификатор BigQuery: %q", ident)
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT branch_code, branchname_th, coordinates, province, region, district, branch_status")
	fmt.Fprintf(&sb, " FROM `%s.%s.%s`", opts.ProjectID, opts.Dataset, opts.Table)
	if len(opts.Statuses) > 0 {
		sb.WriteString(" WHERE branch_status IN UNNEST(@statuses)")
	}
	if opts.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", opts.Limit)
	}
	return sb.String(), nil
}

func (p *Provider) GetBranches(ctx context.Context) ([]dto.IntegrationBranchDTO, error) {
	q := p.client.Query(p.query)
	q.Location = p.opts.Location
	if len(p.opts.Statuses) > 0 {
		q.Parameters = []bigquery.QueryParameter{{Name: "statuses", Value: p.opts.Statuses}}
	}

	p.logger.Debug("Выполняем запрос к BigQuery", zap.String("query", p.query))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса BigQuery: %w", err)
	}

	var branches []dto.IntegrationBranchDTO
	for {
		var row masterdataRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки BigQuery: %w", err)
		}

		entity := rowToEntity(row)
		if entity.Code == "" {
			p.logger.Warn("Строка без кода филиала пропущена", zap.String("name", entity.NameTH))
			continue
		}
		branches = append(branches, dto.BranchFromMasterdata(entity))
	}

	p.logger.Info("Филиалы получены из BigQuery", zap.Int("count", len(branches)))
	return branches, nil
}

func (p *Provider) Close() error {
	return p.client.Close()
}

func rowToEntity(row masterdataRow) entities.BranchMasterdata {
	return entities.BranchMasterdata{
		Code:        strings.TrimSpace(row.BranchCode.StringVal),
		NameTH:      row.BranchNameTH.StringVal,
		Coordinates: nullString(row.Coordinates),
		Province:    nullString(row.Province),
		Region:      nullString(row.Region),
		District:    nullString(row.District),
		Status:      row.BranchStatus.StringVal,
	}
}

func nullString(v bigquery.NullString) null.String {
	return null.NewString(v.StringVal, v.Valid)
}
