package directory

import "recruitment-form/internal/dto"

// mapRecord переводит запись справочника во внутреннюю; старое поле status принимается как branch_status.
func mapRecord(ext wireBranch) dto.BranchRecord {
	status := ext.BranchStatus
	if status == "" {
		status = ext.Status
	}
	return dto.BranchRecord{
		Value:       ext.Value,
		Text:        ext.Text,
		Code:        ext.Code,
		Province:    ext.Province,
		Region:      ext.Region,
		District:    ext.District,
		Coordinates: ext.Coordinates,
		Status:      status,
	}
}
