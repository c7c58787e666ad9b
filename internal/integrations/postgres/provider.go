package postgres

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"recruitment-form/internal/entities"
	"recruitment-form/internal/integrations"
	"recruitment-form/internal/integrations/dto"
)

var masterdataColumns = []string{
	"branch_code", "branchname_th", "coordinates", "province", "region", "district", "branch_status",
}

// tableRegexp - имя таблицы, допускается схема: "branch_masterdata", "warehouse.branch_masterdata".
var tableRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateTable проверяет имя таблицы: его нельзя передать параметром запроса.
func ValidateTable(table string) error {
	if !tableRegexp.MatchString(table) {
		return fmt.Errorf("недопустимое имя таблицы Postgres: %q", table)
	}
	return nil
}

type Options struct {
	Table    string
	Statuses []string
	Limit    int
}

// Provider читает справочник филиалов из таблицы Postgres.
type Provider struct {
	storage *pgxpool.Pool
	opts    Options
	logger  *zap.Logger
}

func New(storage *pgxpool.Pool, opts Options, logger *zap.Logger) (integrations.DataProvider, error) {
	if err := ValidateTable(opts.Table); err != nil {
		return nil, err
	}
	return &Provider{
		storage: storage,
		opts:    opts,
		logger:  logger.Named("postgres_provider"),
	}, nil
}

func (p *Provider) Name() string {
	return "postgres"
}

func BuildQuery(opts Options) (string, []interface{}, error) {
	if err := ValidateTable(opts.Table); err != nil {
		return "", nil, err
	}
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(masterdataColumns...).From(opts.Table)
	if len(opts.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"branch_status": opts.Statuses})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	return builder.ToSql()
}

func (p *Provider) GetBranches(ctx context.Context) ([]dto.IntegrationBranchDTO, error) {
	query, args, err := BuildQuery(p.opts)
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса филиалов: %w", err)
	}

	rows, err := p.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса филиалов: %w", err)
	}
	defer rows.Close()

	var branches []dto.IntegrationBranchDTO
	for rows.Next() {
		entity, err := scanMasterdata(rows)
		if err != nil {
			return nil, err
		}
		if entity.Code == "" {
			p.logger.Warn("Строка без кода филиала пропущена", zap.String("name", entity.NameTH))
			continue
		}
		branches = append(branches, dto.BranchFromMasterdata(entity))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк филиалов: %w", err)
	}

	p.logger.Info("Филиалы получены из Postgres", zap.Int("count", len(branches)))
	return branches, nil
}

func scanMasterdata(row pgx.Row) (entities.BranchMasterdata, error) {
	var e entities.BranchMasterdata
	var code, name, status null.String

	if err := row.Scan(&code, &name, &e.Coordinates, &e.Province, &e.Region, &e.District, &status); err != nil {
		return e, fmt.Errorf("ошибка сканирования филиала: %w", err)
	}
	e.Code = strings.TrimSpace(code.String)
	e.NameTH = name.String
	e.Status = status.String
	return e, nil
}
