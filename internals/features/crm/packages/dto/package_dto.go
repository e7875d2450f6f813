// file: internals/features/crm/packages/dto/package_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "agencehub_backend/internals/features/crm/packages/model"
)

type CreatePackageRequest struct {
	PackageName  string   `json:"package_name" validate:"required,max=120"`
	PackageDesc  *string  `json:"package_desc"`
	Deliverables []string `json:"package_deliverables"`

	MonthlyPrice *decimal.Decimal `json:"package_monthly_price"`
	IsActive     *bool            `json:"package_is_active"`
}

func (r *CreatePackageRequest) ToModel() *model.ServicePackage {
	p := &model.ServicePackage{
		PackageName:         r.PackageName,
		PackageDesc:         r.PackageDesc,
		PackageDeliverables: r.Deliverables,
		PackageIsActive:     true,
	}
	if r.MonthlyPrice != nil {
		p.PackageMonthlyPrice = *r.MonthlyPrice
	}
	if r.IsActive != nil {
		p.PackageIsActive = *r.IsActive
	}
	return p
}

type PatchPackageRequest struct {
	PackageName  *string   `json:"package_name" validate:"omitempty,max=120"`
	PackageDesc  *string   `json:"package_desc"`
	Deliverables *[]string `json:"package_deliverables"`

	MonthlyPrice *decimal.Decimal `json:"package_monthly_price"`
	IsActive     *bool            `json:"package_is_active"`
}

func (p *PatchPackageRequest) ApplyTo(m *model.ServicePackage) {
	if p.PackageName != nil {
		m.PackageName = *p.PackageName
	}
	if p.PackageDesc != nil {
		m.PackageDesc = p.PackageDesc
	}
	if p.Deliverables != nil {
		m.PackageDeliverables = *p.Deliverables
	}
	if p.MonthlyPrice != nil {
		m.PackageMonthlyPrice = *p.MonthlyPrice
	}
	if p.IsActive != nil {
		m.PackageIsActive = *p.IsActive
	}
}

type PackageResponse struct {
	PackageID    uuid.UUID       `json:"package_id"`
	PackageName  string          `json:"package_name"`
	PackageDesc  *string         `json:"package_desc,omitempty"`
	Deliverables []string        `json:"package_deliverables"`
	MonthlyPrice decimal.Decimal `json:"package_monthly_price"`
	IsActive     bool            `json:"package_is_active"`
	CreatedAt    time.Time       `json:"package_created_at"`
	UpdatedAt    time.Time       `json:"package_updated_at"`
}

func FromModelPackage(m *model.ServicePackage) *PackageResponse {
	return &PackageResponse{
		PackageID:    m.PackageID,
		PackageName:  m.PackageName,
		PackageDesc:  m.PackageDesc,
		Deliverables: m.PackageDeliverables,
		MonthlyPrice: m.PackageMonthlyPrice,
		IsActive:     m.PackageIsActive,
		CreatedAt:    m.PackageCreatedAt,
		UpdatedAt:    m.PackageUpdatedAt,
	}
}

func FromModelPackages(ms []model.ServicePackage) []*PackageResponse {
	out := make([]*PackageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelPackage(&ms[i]))
	}
	return out
}
