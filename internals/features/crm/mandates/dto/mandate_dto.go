// file: internals/features/crm/mandates/dto/mandate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "agencehub_backend/internals/features/crm/mandates/model"
	helpers "agencehub_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateMandateRequest struct {
	MandateClientID uuid.UUID `json:"mandate_client_id" validate:"required"`

	MandateTitle string   `json:"mandate_title" validate:"required,max=160"`
	MandateDesc  *string  `json:"mandate_desc"`
	Platforms    []string `json:"mandate_platforms" validate:"omitempty,dive,oneof=instagram facebook tiktok linkedin youtube x"`

	MonthlyBudget *decimal.Decimal `json:"mandate_monthly_budget"`

	// "YYYY-MM-DD"
	StartDate *string `json:"mandate_start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"mandate_end_date" validate:"omitempty,datetime=2006-01-02"`

	Status *string `json:"mandate_status" validate:"omitempty,oneof=draft active paused ended"`
}

func (r *CreateMandateRequest) ToModel() (*model.Mandate, error) {
	m := &model.Mandate{
		MandateClientID:  r.MandateClientID,
		MandateTitle:     r.MandateTitle,
		MandateDesc:      r.MandateDesc,
		MandatePlatforms: r.Platforms,
		MandateStatus:    model.MandateStatusDraft,
	}
	if r.MonthlyBudget != nil {
		m.MandateMonthlyBudget = *r.MonthlyBudget
	}
	if r.Status != nil {
		m.MandateStatus = model.MandateStatus(*r.Status)
	}
	if r.StartDate != nil && *r.StartDate != "" {
		t, err := helpers.ParseDateYMD(*r.StartDate)
		if err != nil {
			return nil, err
		}
		m.MandateStartDate = &t
	}
	if r.EndDate != nil && *r.EndDate != "" {
		t, err := helpers.ParseDateYMD(*r.EndDate)
		if err != nil {
			return nil, err
		}
		m.MandateEndDate = &t
	}
	return m, nil
}

/* =========================================================
   REQUEST: Patch (pointer = opsional)
   ========================================================= */

type PatchMandateRequest struct {
	MandateTitle  *string   `json:"mandate_title" validate:"omitempty,max=160"`
	MandateDesc   *string   `json:"mandate_desc"`
	Platforms     *[]string `json:"mandate_platforms" validate:"omitempty,dive,oneof=instagram facebook tiktok linkedin youtube x"`
	MonthlyBudget *decimal.Decimal `json:"mandate_monthly_budget"`

	StartDate *string `json:"mandate_start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"mandate_end_date" validate:"omitempty,datetime=2006-01-02"`

	Status *string `json:"mandate_status" validate:"omitempty,oneof=draft active paused ended"`
}

func (p *PatchMandateRequest) ApplyTo(m *model.Mandate) error {
	if p.MandateTitle != nil {
		m.MandateTitle = *p.MandateTitle
	}
	if p.MandateDesc != nil {
		m.MandateDesc = p.MandateDesc
	}
	if p.Platforms != nil {
		m.MandatePlatforms = *p.Platforms
	}
	if p.MonthlyBudget != nil {
		m.MandateMonthlyBudget = *p.MonthlyBudget
	}
	if p.StartDate != nil {
		if *p.StartDate == "" {
			m.MandateStartDate = nil
		} else {
			t, err := helpers.ParseDateYMD(*p.StartDate)
			if err != nil {
				return err
			}
			m.MandateStartDate = &t
		}
	}
	if p.EndDate != nil {
		if *p.EndDate == "" {
			m.MandateEndDate = nil
		} else {
			t, err := helpers.ParseDateYMD(*p.EndDate)
			if err != nil {
				return err
			}
			m.MandateEndDate = &t
		}
	}
	if p.Status != nil {
		m.MandateStatus = model.MandateStatus(*p.Status)
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MandateResponse struct {
	MandateID       uuid.UUID `json:"mandate_id"`
	MandateClientID uuid.UUID `json:"mandate_client_id"`

	MandateTitle string   `json:"mandate_title"`
	MandateDesc  *string  `json:"mandate_desc,omitempty"`
	Platforms    []string `json:"mandate_platforms"`

	MonthlyBudget decimal.Decimal `json:"mandate_monthly_budget"`

	StartDate *string `json:"mandate_start_date,omitempty"`
	EndDate   *string `json:"mandate_end_date,omitempty"`

	Status model.MandateStatus `json:"mandate_status"`

	CreatedAt time.Time `json:"mandate_created_at"`
	UpdatedAt time.Time `json:"mandate_updated_at"`
}

func FromModelMandate(m *model.Mandate) *MandateResponse {
	return &MandateResponse{
		MandateID:       m.MandateID,
		MandateClientID: m.MandateClientID,
		MandateTitle:    m.MandateTitle,
		MandateDesc:     m.MandateDesc,
		Platforms:       m.MandatePlatforms,
		MonthlyBudget:   m.MandateMonthlyBudget,
		StartDate:       helpers.FormatDateYMDPtr(m.MandateStartDate),
		EndDate:         helpers.FormatDateYMDPtr(m.MandateEndDate),
		Status:          m.MandateStatus,
		CreatedAt:       m.MandateCreatedAt,
		UpdatedAt:       m.MandateUpdatedAt,
	}
}

func FromModelMandates(ms []model.Mandate) []*MandateResponse {
	out := make([]*MandateResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelMandate(&ms[i]))
	}
	return out
}
