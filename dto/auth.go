package dto

import "time"

type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserResponse struct {
	ID               uint      `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	PhoneNumber      string    `json:"phoneNumber"`
	Role             int       `json:"role"`
	Status           int       `json:"status"`
	RegistrationDate time.Time `json:"registrationDate"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type UpdateUserStatusRequest struct {
	Status int `json:"status"`
}
