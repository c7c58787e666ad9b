package seeders

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"recruitment-form/internal/entities"
	"recruitment-form/internal/integrations/fallback"
)

func TestFallbackMasterdata(t *testing.T) {
	rows := FallbackMasterdata()

	require.Len(t, rows, len(fallback.Branches()))
	assert.Equal(t, "BKK01", rows[0].Code)
	assert.Equal(t, "กรุงเทพฯ - สีลม", rows[0].NameTH)
	for _, r := range rows {
		assert.Equal(t, StatusOpen, r.Status)
	}
}

func TestBuildBranchUpsert(t *testing.T) {
	query, args, err := buildBranchUpsert("branch_masterdata", FallbackMasterdata()[:2])
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query,
		"INSERT INTO branch_masterdata (branch_code,branchname_th,coordinates,province,region,district,branch_status) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14) ON CONFLICT (branch_code) DO UPDATE SET"), query)
	assert.Len(t, args, 14)
	assert.Equal(t, "BKK02", args[7])
}

func TestBuildBranchUpsert_RejectsUnsafeTable(t *testing.T) {
	_, _, err := buildBranchUpsert("branch_masterdata (x) VALUES (1); --", FallbackMasterdata()[:1])
	assert.Error(t, err)
}

func TestDedupeByCode_LastWins(t *testing.T) {
	rows := []entities.BranchMasterdata{
		{Code: "CNX01", NameTH: "เก่า"},
		{Code: "PKT01", NameTH: "ภูเก็ต"},
		{Code: "CNX01", NameTH: "เชียงใหม่"},
	}

	got := dedupeByCode(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "เชียงใหม่", got[0].NameTH)
	assert.Equal(t, "PKT01", got[1].Code)
}

func TestParseBranchRows(t *testing.T) {
	rows := [][]string{
		{"รายงานสาขา"},
		{},
		{"รหัสสาขา", "ชื่อสาขา", "จังหวัด", "ภาค", "อำเภอ", "พิกัด", "สถานะ"},
		{"CNX01", "เชียงใหม่", "เชียงใหม่", "เหนือ", "เมือง", "18.79,98.98", "เปิดทำการ"},
		{"PKT01", "ภูเก็ต", "ภูเก็ต"},
		{"CNX01", "ซ้ำ"},
		{""},
		{"รวม", "2"},
	}

	got, ok := parseBranchRows(rows)

	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, entities.BranchMasterdata{
		Code:        "CNX01",
		NameTH:      "เชียงใหม่",
		Coordinates: null.StringFrom("18.79,98.98"),
		Province:    null.StringFrom("เชียงใหม่"),
		Region:      null.StringFrom("เหนือ"),
		District:    null.StringFrom("เมือง"),
		Status:      "เปิดทำการ",
	}, got[0])
	assert.False(t, got[1].Region.Valid)
	assert.Equal(t, StatusOpen, got[1].Status)
}

func TestParseBranchRows_EnglishHeaderAndMissingHeader(t *testing.T) {
	got, ok := parseBranchRows([][]string{
		{"Branch_Code", "BranchName_TH", "Branch_Status"},
		{"SKA01", "สงขลา", "รอเปิดทำการ"},
	})
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "รอเปิดทำการ", got[0].Status)

	_, ok = parseBranchRows([][]string{{"foo", "bar"}, {"1", "2"}})
	assert.False(t, ok)
}

func TestReadBranchesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "branches.xlsx")
	f := excelize.NewFile()
	header := []interface{}{"รหัสสาขา", "ชื่อสาขา", "จังหวัด"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"KHN01", "ขอนแก่น", "ขอนแก่น"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := ReadBranchesXLSX(path)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "KHN01", got[0].Code)
	assert.Equal(t, null.StringFrom("ขอนแก่น"), got[0].Province)
}

func TestReadBranchesXLSX_MissingFile(t *testing.T) {
	_, err := ReadBranchesXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
