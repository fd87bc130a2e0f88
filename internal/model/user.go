package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
