package seeders

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"recruitment-form/internal/entities"
)

// Заголовки колонок, которые узнаёт импорт: тайские (как в выгрузке /branches/export) и английские.
var branchColumnAliases = map[string][]string{
	"code":        {"รหัสสาขา", "branch_code", "code"},
	"name":        {"ชื่อสาขา", "branchname_th", "name"},
	"province":    {"จังหวัด", "province"},
	"region":      {"ภาค", "region"},
	"district":    {"อำเภอ", "district"},
	"coordinates": {"พิกัด", "coordinates"},
	"status":      {"สถานะ", "branch_status", "status"},
}

// ReadBranchesXLSX ищет шапку на всех листах и читает строки под ней.
func ReadBranchesXLSX(filePath string) ([]entities.BranchMasterdata, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения листа '%s': %w", sheet, err)
		}
		if branches, ok := parseBranchRows(rows); ok {
			log.Printf("✅ Лист '%s': найдено филиалов: %d", sheet, len(branches))
			return branches, nil
		}
	}

	return nil, fmt.Errorf("НЕ НАЙДЕНА ШАПКА ТАБЛИЦЫ. Нужны колонки 'รหัสสาขา/branch_code' и 'ชื่อสาขา/branchname_th'")
}

// parseBranchRows возвращает false, если в строках нет шапки с кодом и названием.
func parseBranchRows(rows [][]string) ([]entities.BranchMasterdata, bool) {
	for rIdx, row := range rows {
		idx := detectColumns(row)
		if idx["code"] < 0 || idx["name"] < 0 {
			continue
		}

		seen := map[string]struct{}{}
		var branches []entities.BranchMasterdata
		for _, data := range rows[rIdx+1:] {
			code := safeGet(data, idx["code"])
			if code == "" || isTrash(code) {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}

			status := safeGet(data, idx["status"])
			if status == "" {
				status = StatusOpen
			}
			branches = append(branches, entities.BranchMasterdata{
				Code:        code,
				NameTH:      safeGet(data, idx["name"]),
				Coordinates: nullIfEmpty(safeGet(data, idx["coordinates"])),
				Province:    nullIfEmpty(safeGet(data, idx["province"])),
				Region:      nullIfEmpty(safeGet(data, idx["region"])),
				District:    nullIfEmpty(safeGet(data, idx["district"])),
				Status:      status,
			})
		}
		return branches, true
	}
	return nil, false
}

func detectColumns(row []string) map[string]int {
	idx := make(map[string]int, len(branchColumnAliases))
	for key := range branchColumnAliases {
		idx[key] = -1
	}
	for cIdx, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		for key, aliases := range branchColumnAliases {
			if idx[key] >= 0 {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					idx[key] = cIdx
				}
			}
		}
	}
	return idx
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// isTrash - итоговые строки внизу таблицы.
func isTrash(val string) bool {
	v := strings.ToLower(val)
	return strings.Contains(v, "รวม") || strings.Contains(v, "total")
}
