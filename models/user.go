package models

// User roles.
const (
	RoleAdmin  = "管理者"
	RoleMember = "一般"
)

// User is read-mostly reference data; there is no user management in scope.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
