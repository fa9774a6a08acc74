// Package tenant defines the per-request tenant scope.
//
// Every data-access call in the service layer takes an explicit Scope
// instead of reading ambient auth state: queries without a resolved
// organization must fail closed before touching the database, so rows can
// never leak across tenants.
package tenant

import (
	"errors"

	"github.com/google/uuid"
)

// Roles within an organization. There is no implicit hierarchy — each
// endpoint declares its own allow-list.
const (
	RolAdmin   = "admin"
	RolManager = "manager"
	RolCashier = "cashier"
)

// ErrSinOrganizacion is returned by any operation invoked without a
// resolved organization.
var ErrSinOrganizacion = errors.New("No hay organización seleccionada")

// Scope identifies the organization and role under which a request acts.
type Scope struct {
	OrgID     uuid.UUID
	UsuarioID uuid.UUID
	Rol       string
}

// Valida fails closed when no organization is resolved.
func (s Scope) Valida() error {
	if s.OrgID == uuid.Nil {
		return ErrSinOrganizacion
	}
	return nil
}
