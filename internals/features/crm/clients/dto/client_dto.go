// file: internals/features/crm/clients/dto/client_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "agencehub_backend/internals/features/crm/clients/model"
)

/* =========================================================
   PatchField tri-state (Unset / Null / Set(value))
   ========================================================= */

type PatchField[T any] struct {
	Set   bool `json:"-"`
	Null  bool `json:"-"`
	Value *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Null = true
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateClientRequest struct {
	ClientName    string  `json:"client_name" validate:"required,max=120"`
	ClientCompany *string `json:"client_company" validate:"omitempty,max=120"`
	ClientEmail   *string `json:"client_email" validate:"omitempty,email"`
	ClientPhone   *string `json:"client_phone" validate:"omitempty,max=30"`
	ClientAddress *string `json:"client_address"`
	ClientSiret   *string `json:"client_siret" validate:"omitempty,max=20"`
	ClientNotes   *string `json:"client_notes"`

	ClientIsActive *bool `json:"client_is_active"`
}

func (r *CreateClientRequest) ToModel() *model.Client {
	cl := &model.Client{
		ClientName:     r.ClientName,
		ClientCompany:  r.ClientCompany,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		ClientAddress:  r.ClientAddress,
		ClientSiret:    r.ClientSiret,
		ClientNotes:    r.ClientNotes,
		ClientIsActive: true, // default true
	}
	if r.ClientIsActive != nil {
		cl.ClientIsActive = *r.ClientIsActive
	}
	return cl
}

/* =========================================================
   REQUEST: Patch (Partial Update)
   ========================================================= */

type PatchClientRequest struct {
	ClientName    PatchField[string] `json:"client_name"`
	ClientCompany PatchField[string] `json:"client_company"`
	ClientEmail   PatchField[string] `json:"client_email"`
	ClientPhone   PatchField[string] `json:"client_phone"`
	ClientAddress PatchField[string] `json:"client_address"`
	ClientSiret   PatchField[string] `json:"client_siret"`
	ClientNotes   PatchField[string] `json:"client_notes"`

	ClientIsActive PatchField[bool] `json:"client_is_active"`
}

func (p *PatchClientRequest) ApplyTo(cl *model.Client) {
	if p.ClientName.Set && !p.ClientName.Null {
		cl.ClientName = *p.ClientName.Value
	}

	applyStringPtr := func(f PatchField[string], dst **string) {
		if !f.Set {
			return
		}
		if f.Null {
			*dst = nil
		} else {
			*dst = f.Value
		}
	}
	applyStringPtr(p.ClientCompany, &cl.ClientCompany)
	applyStringPtr(p.ClientEmail, &cl.ClientEmail)
	applyStringPtr(p.ClientPhone, &cl.ClientPhone)
	applyStringPtr(p.ClientAddress, &cl.ClientAddress)
	applyStringPtr(p.ClientSiret, &cl.ClientSiret)
	applyStringPtr(p.ClientNotes, &cl.ClientNotes)

	if p.ClientIsActive.Set && !p.ClientIsActive.Null {
		cl.ClientIsActive = *p.ClientIsActive.Value
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ClientResponse struct {
	ClientID uuid.UUID `json:"client_id"`

	ClientName    string  `json:"client_name"`
	ClientCompany *string `json:"client_company,omitempty"`
	ClientEmail   *string `json:"client_email,omitempty"`
	ClientPhone   *string `json:"client_phone,omitempty"`
	ClientAddress *string `json:"client_address,omitempty"`
	ClientSiret   *string `json:"client_siret,omitempty"`
	ClientNotes   *string `json:"client_notes,omitempty"`

	ClientIsActive bool `json:"client_is_active"`

	ClientCreatedAt time.Time `json:"client_created_at"`
	ClientUpdatedAt time.Time `json:"client_updated_at"`
}

func FromModelClient(m *model.Client) *ClientResponse {
	return &ClientResponse{
		ClientID:        m.ClientID,
		ClientName:      m.ClientName,
		ClientCompany:   m.ClientCompany,
		ClientEmail:     m.ClientEmail,
		ClientPhone:     m.ClientPhone,
		ClientAddress:   m.ClientAddress,
		ClientSiret:     m.ClientSiret,
		ClientNotes:     m.ClientNotes,
		ClientIsActive:  m.ClientIsActive,
		ClientCreatedAt: m.ClientCreatedAt,
		ClientUpdatedAt: m.ClientUpdatedAt,
	}
}

func FromModelClients(ms []model.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelClient(&ms[i]))
	}
	return out
}
