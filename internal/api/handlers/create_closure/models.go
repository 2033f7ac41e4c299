package create_closure

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
)

// CreateClosureRequest HTTP request model
type CreateClosureRequest struct {
	Date    string  `json:"date"` // "2025-10-15"
	EndDate *string `json:"endDate,omitempty"`
	Reason  *string `json:"reason,omitempty"`
	Label   *string `json:"label,omitempty"` // Произвольная подпись времени ("8h-12h")
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateClosureRequest) ToServiceRequest(spaceID string, userID int64) (*models.CreateClosureRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &models.CreateClosureRequest{
		UserID:  userID,
		SpaceID: spaceID,
		Date:    date,
		Reason:  r.Reason,
		Label:   r.Label,
	}

	if r.EndDate != nil && *r.EndDate != "" {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
