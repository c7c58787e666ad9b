package seeders

import (
	"context"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-form/internal/entities"
	"recruitment-form/internal/integrations/fallback"
	"recruitment-form/internal/integrations/postgres"
)

// StatusOpen - статус, с которым запасной список попадает в хранилище.
const StatusOpen = "เปิดทำการ"

// batchSize - сколько строк уходит в один INSERT.
const batchSize = 500

// FallbackMasterdata - запасной список в виде строк хранилища.
func FallbackMasterdata() []entities.BranchMasterdata {
	list := fallback.Branches()
	rows := make([]entities.BranchMasterdata, 0, len(list))
	for _, b := range list {
		rows = append(rows, entities.BranchMasterdata{
			Code:   b.Code,
			NameTH: b.Text,
			Status: StatusOpen,
		})
	}
	return rows
}

func buildBranchUpsert(table string, rows []entities.BranchMasterdata) (string, []interface{}, error) {
	if err := postgres.ValidateTable(table); err != nil {
		return "", nil, err
	}
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(table).
		Columns("branch_code", "branchname_th", "coordinates", "province", "region", "district", "branch_status")
	for _, r := range rows {
		builder = builder.Values(r.Code, r.NameTH, r.Coordinates, r.Province, r.Region, r.District, r.Status)
	}
	builder = builder.Suffix(`ON CONFLICT (branch_code) DO UPDATE SET
		branchname_th = EXCLUDED.branchname_th,
		coordinates = COALESCE(EXCLUDED.coordinates, ` + table + `.coordinates),
		province = COALESCE(EXCLUDED.province, ` + table + `.province),
		region = COALESCE(EXCLUDED.region, ` + table + `.region),
		district = COALESCE(EXCLUDED.district, ` + table + `.district),
		branch_status = EXCLUDED.branch_status,
		updated_at = NOW()`)
	return builder.ToSql()
}

// SeedBranches заливает строки в хранилище одной транзакцией (UPSERT по коду).
func SeedBranches(ctx context.Context, db *pgxpool.Pool, table string, rows []entities.BranchMasterdata) error {
	rows = dedupeByCode(rows)
	log.Printf("  - Наполнение таблицы '%s' (%d строк)...", table, len(rows))
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		query, args, err := buildBranchUpsert(table, rows[start:end])
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			log.Printf("Ошибка при вставке филиалов %d-%d: %v", start+1, end, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

// dedupeByCode оставляет по одной строке на код: побеждает последняя.
// Один INSERT ... ON CONFLICT не может обновить строку дважды.
func dedupeByCode(rows []entities.BranchMasterdata) []entities.BranchMasterdata {
	pos := make(map[string]int, len(rows))
	out := make([]entities.BranchMasterdata, 0, len(rows))
	for _, r := range rows {
		if i, ok := pos[r.Code]; ok {
			out[i] = r
			continue
		}
		pos[r.Code] = len(out)
		out = append(out, r)
	}
	return out
}

func nullIfEmpty(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
