package handler

import (
	"github.com/noxel/ticketing-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// addressRequest is the Brazilian address block accepted at signup.
// Accepted and validated, not persisted yet.
type addressRequest struct {
	CEP         string `json:"cep"         validate:"required"`
	Logradouro  string `json:"logradouro"  validate:"required"`
	Numero      string `json:"numero"      validate:"required"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"      validate:"required"`
	Estado      string `json:"estado"      validate:"required"`
}

// signupOrganizerRequest is the body of POST /users/signup/organizer.
// The role is inferred from the endpoint.
type signupOrganizerRequest struct {
	FullName          string         `json:"full_name"          validate:"required"`
	Password          string         `json:"password"           validate:"required,min=6"`
	Email             string         `json:"email"              validate:"required,email"`
	GovIdentification int64          `json:"gov_identification" validate:"required,gt=0"`
	Address           addressRequest `json:"address"            validate:"required"`
}

// signupAttendeeRequest is the body of POST /users/signup/attendee.
type signupAttendeeRequest struct {
	FullName          string         `json:"full_name"          validate:"required"`
	Password          string         `json:"password"           validate:"required,min=6"`
	Phone             string         `json:"phone"              validate:"required,e164"`
	Email             string         `json:"email"              validate:"required,email"`
	GovIdentification int64          `json:"gov_identification" validate:"required,gt=0"`
	BirthDate         string         `json:"birth_date"         validate:"required,datetime=2006-01-02"`
	Address           addressRequest `json:"address"            validate:"required"`
}

// signupResponse carries the session token and the created user. The user's
// credential hash is excluded by the domain type's serialization rules.
type signupResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// meResponse is the authenticated self-profile. RelatedData is absent for
// roles that carry no profile.
type meResponse struct {
	User        *domain.User        `json:"user"`
	RelatedData *domain.RelatedData `json:"related_data,omitempty"`
}
