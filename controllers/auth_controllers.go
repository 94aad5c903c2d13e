package controllers

import (
	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"
	"roadready/validator"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service services.AuthServiceInterface
}

func NewAuthController(service services.AuthServiceInterface) *AuthController {
	return &AuthController{service: service}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Username:         user.Username,
		PhoneNumber:      user.PhoneNumber,
		Role:             user.Role,
		Status:           user.Status,
		RegistrationDate: user.RegistrationDate,
	}
}

// Register đăng ký tài khoản mới
func (ctl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := &models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Username:    input.Username,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	}
	if err := validator.ValidateUser(user); err != nil {
		response.FromDomainError(c, err)
		return
	}

	created, err := ctl.service.Register(c.Request.Context(), user)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toUserResponse(created))
}

// Login đăng nhập bằng email hoặc username
func (ctl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ctl.service.Login(c.Request.Context(), input.Identifier, input.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	services.SetTokenCookies(c, token)
	response.Success(c, dto.LoginResponse{
		User:        toUserResponse(user),
		AccessToken: token,
	})
}

// GoogleLogin đăng nhập bằng Google ID token
func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := ctl.service.LoginWithGoogle(c.Request.Context(), input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	services.SetTokenCookies(c, token)
	response.Success(c, dto.LoginResponse{
		User:        toUserResponse(user),
		AccessToken: token,
	})
}

// GetProfile trả về thông tin tài khoản đang đăng nhập
func (ctl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := ctl.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toUserResponse(user))
}

// GetUsers trả về danh sách tài khoản cho admin
func (ctl *AuthController) GetUsers(c *gin.Context) {
	users, err := ctl.service.ListUsers(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		userResponses = append(userResponses, toUserResponse(u))
	}
	response.SuccessWithTotal(c, userResponses, len(userResponses))
}

// ChangeUserStatus khóa / mở khóa tài khoản
func (ctl *AuthController) ChangeUserStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctl.service.SetUserStatus(c.Request.Context(), uint(id), request.Status)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toUserResponse(user))
}
