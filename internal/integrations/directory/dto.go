package directory

// wireResponse - ответ справочника. Success указателем: отсутствие поля != false не должно путаться с true.
type wireResponse struct {
	Success *bool        `json:"success"`
	Data    []wireBranch `json:"data"`
	Count   int          `json:"count"`
	Note    string       `json:"note"`
}

// wireBranch - запись как она приходит: живые данные без value, запасные - с value.
type wireBranch struct {
	Value        string `json:"value"`
	Text         string `json:"text"`
	Code         string `json:"code"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	District     string `json:"district"`
	Coordinates  string `json:"coordinates"`
	BranchStatus string `json:"branch_status"`
	Status       string `json:"status"`
}
