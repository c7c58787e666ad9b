// Файл: internal/integrations/dto/branch.go
package dto

// IntegrationBranchDTO - филиал в том виде, в каком его отдаёт любой провайдер хранилища.
type IntegrationBranchDTO struct {
	Code        string
	Name        string
	Coordinates string
	Province    string
	Region      string
	District    string
	Status      string
}
