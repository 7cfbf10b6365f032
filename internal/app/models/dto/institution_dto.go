package dto

import "github.com/studenthub/backend/internal/app/models"

// InstitutionResponse represents an institution in the public directory
type InstitutionResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
}

// NewInstitutionResponses maps a slice of models, always non-nil
func NewInstitutionResponses(institutions []models.Institution) []InstitutionResponse {
	responses := make([]InstitutionResponse, 0, len(institutions))
	for _, inst := range institutions {
		responses = append(responses, InstitutionResponse{
			ID:           inst.ID,
			Name:         inst.Name,
			Code:         inst.Code,
			Address:      inst.Address,
			ContactEmail: inst.ContactEmail,
		})
	}
	return responses
}
