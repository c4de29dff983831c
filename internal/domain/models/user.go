package models

// Roles stored in Usuario.rol.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Empleado"
)

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
