package authapimodels

import (
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Username string `json:"username"` // F-number
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LoginResponse struct {
	Token   string `json:"token"`
	FNumber string `json:"f_number"`
	Role    string `json:"role"`
}
