package entity

// Role rol del usuario dentro del grupo.
type Role string

// Roles válidos.
const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Actor usuario que ejecuta una mutación; se copia en cada LogEntry como atribución.
type Actor struct {
	ID     string
	Name   string
	Role   Role
	Brands []Brand
}

// SystemActor atribución por defecto cuando no hay usuario en sesión.
func SystemActor() Actor {
	return Actor{ID: "sys", Name: "System", Role: RoleAdmin, Brands: Brands}
}

// CanAccess indica si el actor opera sobre la marca.
func (a Actor) CanAccess(b Brand) bool {
	for _, v := range a.Brands {
		if v == b {
			return true
		}
	}
	return false
}

// CanManage indica si el actor puede mutar inventario, precios y aprobar pedidos.
func (a Actor) CanManage() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// OrSystem devuelve el actor o el actor de sistema si no tiene ID.
func (a Actor) OrSystem() Actor {
	if a.ID == "" {
		return SystemActor()
	}
	if a.Name == "" {
		a.Name = a.ID
	}
	return a
}
