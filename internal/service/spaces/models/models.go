package models

import (
	"errors"
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

var (
	// ErrInvalidCategory возвращается при некорректной категории пространства
	ErrInvalidCategory = errors.New("invalid space category")

	// ErrInvalidSlot возвращается при некорректном виде слота
	ErrInvalidSlot = errors.New("invalid slot")
)

// Request модели

// PricingPayload тарифная сетка пространства
type PricingPayload struct {
	HalfDay  *float64 `json:"halfDay,omitempty"`
	Day      *float64 `json:"day,omitempty"`
	Month    *float64 `json:"month,omitempty"`
	IsQuote  bool     `json:"isQuote"`
	Currency string   `json:"currency"`
}

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	ID             string         `json:"id"` // slug, уникален
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Capacity       int            `json:"capacity"`
	Pricing        PricingPayload `json:"pricing"`
	MinDuration    *int           `json:"minDuration,omitempty"`
	MaxDuration    *int           `json:"maxDuration,omitempty"`
	AvailableSlots []string       `json:"availableSlots,omitempty"` // nil = все слоты
	AutoApprove    bool           `json:"autoApprove"`
	ShowInCalendar bool           `json:"showInCalendar"`
}

// UpdateSpaceRequest запрос на полное обновление пространства
type UpdateSpaceRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Capacity       int            `json:"capacity"`
	Pricing        PricingPayload `json:"pricing"`
	MinDuration    *int           `json:"minDuration,omitempty"`
	MaxDuration    *int           `json:"maxDuration,omitempty"`
	AvailableSlots []string       `json:"availableSlots,omitempty"`
	AutoApprove    bool           `json:"autoApprove"`
	ShowInCalendar bool           `json:"showInCalendar"`
}

// CreateClosureRequest запрос на административное закрытие пространства
type CreateClosureRequest struct {
	UserID  int64      `json:"-"`       // Администратор, создающий закрытие
	SpaceID string     `json:"spaceId"` // Закрываемое пространство
	Date    time.Time  `json:"date"`    // Первый день закрытия
	EndDate *time.Time `json:"endDate,omitempty"`
	Reason  *string    `json:"reason,omitempty"`
	Label   *string    `json:"label,omitempty"` // Произвольная подпись времени ("8h-12h")
}

// ToDomainSpace конвертирует запрос создания в domain пространство
func (r *CreateSpaceRequest) ToDomainSpace() (*domain.Space, error) {
	category, err := toDomainCategory(r.Category)
	if err != nil {
		return nil, err
	}

	slots, err := toDomainSlots(r.AvailableSlots)
	if err != nil {
		return nil, err
	}

	return &domain.Space{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    category,
		Capacity:    r.Capacity,
		Pricing: domain.Pricing{
			HalfDay:  r.Pricing.HalfDay,
			Day:      r.Pricing.Day,
			Month:    r.Pricing.Month,
			IsQuote:  r.Pricing.IsQuote,
			Currency: r.Pricing.Currency,
		},
		MinDuration:    r.MinDuration,
		MaxDuration:    r.MaxDuration,
		AvailableSlots: slots,
		AutoApprove:    r.AutoApprove,
		ShowInCalendar: r.ShowInCalendar,
	}, nil
}

// ToDomainSpace конвертирует запрос обновления в domain пространство
func (r *UpdateSpaceRequest) ToDomainSpace(id string) (*domain.Space, error) {
	create := CreateSpaceRequest{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Capacity:       r.Capacity,
		Pricing:        r.Pricing,
		MinDuration:    r.MinDuration,
		MaxDuration:    r.MaxDuration,
		AvailableSlots: r.AvailableSlots,
		AutoApprove:    r.AutoApprove,
		ShowInCalendar: r.ShowInCalendar,
	}
	return create.ToDomainSpace()
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Capacity       int            `json:"capacity"`
	Pricing        PricingPayload `json:"pricing"`
	MinDuration    *int           `json:"minDuration,omitempty"`
	MaxDuration    *int           `json:"maxDuration,omitempty"`
	AvailableSlots []string       `json:"availableSlots,omitempty"`
	AutoApprove    bool           `json:"autoApprove"`
	ShowInCalendar bool           `json:"showInCalendar"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReservationID ответ с ID созданной записи закрытия
type ReservationID struct {
	ID int64 `json:"id"`
}

// SpaceListResponse ответ с каталогом пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
	Total  int             `json:"total"`
}

// FromDomainSpace конвертирует domain пространство в response
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	resp := &SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Capacity:    s.Capacity,
		Pricing: PricingPayload{
			HalfDay:  s.Pricing.HalfDay,
			Day:      s.Pricing.Day,
			Month:    s.Pricing.Month,
			IsQuote:  s.Pricing.IsQuote,
			Currency: s.Pricing.Currency,
		},
		MinDuration:    s.MinDuration,
		MaxDuration:    s.MaxDuration,
		AutoApprove:    s.AutoApprove,
		ShowInCalendar: s.ShowInCalendar,

		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}

	if s.AvailableSlots != nil {
		resp.AvailableSlots = make([]string, len(s.AvailableSlots))
		for i, slot := range s.AvailableSlots {
			resp.AvailableSlots[i] = string(slot)
		}
	}

	return resp
}

// FromDomainSpaceList конвертирует список domain пространств в response
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	items := make([]SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		items = append(items, *FromDomainSpace(s))
	}

	return &SpaceListResponse{
		Spaces: items,
		Total:  len(items),
	}
}

func toDomainCategory(s string) (domain.SpaceCategory, error) {
	switch domain.SpaceCategory(s) {
	case domain.CategoryCommerce, domain.CategoryOffice, domain.CategoryCreative,
		domain.CategoryEvent, domain.CategoryMeeting, domain.CategoryWellness,
		domain.CategoryCoworking, domain.CategoryOther:
		return domain.SpaceCategory(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

func toDomainSlots(slots []string) ([]domain.Slot, error) {
	if slots == nil {
		return nil, nil
	}
	result := make([]domain.Slot, len(slots))
	for i, s := range slots {
		slot := domain.Slot(s)
		if !slot.IsValid() {
			return nil, ErrInvalidSlot
		}
		result[i] = slot
	}
	return result, nil
}
