package models

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleNormal UserRole = "NORMAL_USER"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:  "Administrator",
	UserRoleNormal: "User",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
