package dto

import "recruitment-form/internal/entities"

// BranchFromMasterdata переводит строку хранилища во внутренний DTO, NULL становится "".
func BranchFromMasterdata(row entities.BranchMasterdata) IntegrationBranchDTO {
	return IntegrationBranchDTO{
		Code:        row.Code,
		Name:        row.NameTH,
		Coordinates: row.Coordinates.String,
		Province:    row.Province.String,
		Region:      row.Region.String,
		District:    row.District.String,
		Status:      row.Status,
	}
}
