package entities

import "github.com/aarondl/null/v8"

// BranchMasterdata - строка таблицы справочника филиалов в хранилище.
type BranchMasterdata struct {
	Code        string
	NameTH      string
	Coordinates null.String
	Province    null.String
	Region      null.String
	District    null.String
	Status      string
}
