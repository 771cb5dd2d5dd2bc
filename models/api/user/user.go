package userapimodels

import (
	"github.com/pkg/errors"

	"fnb-tracking-backend/models"
	dbmodels "fnb-tracking-backend/models/db"
)

type UserCreateData struct {
	FNumber  string `json:"f_number"`
	Password string `json:"password,omitempty"` // config default applied when empty
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r UserCreateData) Validate() error {
	if r.FNumber == "" {
		return errors.New("f_number is required")
	}
	if !models.UserRole(r.Role).IsValid() {
		return errors.Errorf("unknown role: %v", r.Role)
	}
	return nil
}

type UserUpdateData struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"` // unchanged when empty
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

func (r UserUpdateData) Validate() error {
	if !models.UserRole(r.Role).IsValid() {
		return errors.Errorf("unknown role: %v", r.Role)
	}
	if r.IsActive == nil {
		return errors.New("is_active is required")
	}
	return nil
}

type UserView struct {
	ID       string `json:"id"`
	FNumber  string `json:"f_number"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:       rec.ID,
		FNumber:  rec.FNumber,
		Email:    rec.Email,
		Role:     string(rec.Role),
		IsActive: rec.IsActive,
	}
}
