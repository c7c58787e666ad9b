// Package fallback хранит единственный экземпляр запасного списка филиалов.
// Его используют и сервис справочника, и контроллер выбора на странице,
// поэтому списки не могут разойтись.
package fallback

import "recruitment-form/internal/dto"

const Note = "Using fallback branch data - branch warehouse unavailable"

var branches = []dto.BranchRecord{
	{Value: "bkk-silom", Text: "กรุงเทพฯ - สีลม", Code: "BKK01"},
	{Value: "bkk-sukhumvit", Text: "กรุงเทพฯ - สุขุมวิท", Code: "BKK02"},
	{Value: "bkk-ratchada", Text: "กรุงเทพฯ - รัชดา", Code: "BKK03"},
	{Value: "chiangmai", Text: "เชียงใหม่", Code: "CNX01"},
	{Value: "phuket", Text: "ภูเก็ต", Code: "PKT01"},
	{Value: "chonburi", Text: "ชลบุรี", Code: "CHB01"},
	{Value: "khonkaen", Text: "ขอนแก่น", Code: "KHN01"},
	{Value: "songkhla", Text: "สงขลา", Code: "SKA01"},
	{Value: "nakhonratchasima", Text: "นครราชสีมา", Code: "NMA01"},
}

// Branches возвращает копию списка: вызывающий может её менять.
func Branches() []dto.BranchRecord {
	out := make([]dto.BranchRecord, len(branches))
	copy(out, branches)
	return out
}
