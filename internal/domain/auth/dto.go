package auth

import "github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"

type LoginRequest struct {
	EmployeeID string `json:"empId"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Require("empId", r.EmployeeID)
	errs.Require("password", r.Password)

	return errs.Err()
}

type AdminLoginRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Require("adminId", r.AdminID)
	errs.Require("password", r.Password)

	return errs.Err()
}

type TokenResponse struct {
	AccessToken          string  `json:"accessToken"`
	TokenType            string  `json:"tokenType"`
	AccessTokenExpiresIn int64   `json:"accessTokenExpiresIn"`
	Role                 Role    `json:"role"`
	EmployeeID           *string `json:"empId,omitempty"`
	FullName             *string `json:"fullName,omitempty"`
}
