package services

import (
	"context"
	stderrors "errors"
	"time"

	"roadready/config"
	"roadready/constants"
	"roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*models.User, string, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	SetUserStatus(ctx context.Context, id uint, status int) (*models.User, error)
}

type AuthService struct {
	users  repositories.Repository[*models.User]
	logger logger.Logger
}

type AuthServiceOptions struct {
	Users  repositories.Repository[*models.User]
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{users: opts.Users, logger: opts.Logger}
}

// Register tạo tài khoản mới. Email và username không được trùng với tài
// khoản đã có.
func (s *AuthService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Email == "" || user.Password == "" || user.Username == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "không được để trống email, password, username", nil)
	}
	if existing := s.findByIdentifier(ctx, user.Email); existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "email "+user.Email+" đã được sử dụng", nil)
	}
	if existing := s.findByIdentifier(ctx, user.Username); existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "username "+user.Username+" đã được sử dụng", nil)
	}

	hashedPassword, err := HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword
	user.Status = constants.UserStatusActive

	created, err := s.users.Add(ctx, user)
	if err != nil {
		s.logger.Error("Lỗi tạo tài khoản: %v", err)
		return nil, err
	}
	s.logger.Info("Đã tạo tài khoản %d (%s)", created.ID, created.Username)
	return created, nil
}

// Login xác thực bằng email hoặc username cùng mật khẩu, trả về user và
// access token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	user := s.findByIdentifier(ctx, identifier)
	if user == nil {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "tài khoản hoặc mật khẩu không đúng", nil)
	}
	if user.Status != constants.UserStatusActive {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "tài khoản đã bị khóa", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "tài khoản hoặc mật khẩu không đúng", nil)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60, true)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithGoogle xác thực bằng Google ID token. Tài khoản chưa tồn tại
// sẽ được tạo mới với role user.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*models.User, string, error) {
	payload, err := idtoken.Validate(ctx, idToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Google token không hợp lệ", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Google token không chứa email", nil)
	}

	user := s.findByIdentifier(ctx, email)
	if user == nil {
		user, err = s.users.Add(ctx, &models.User{
			Email:    email,
			Username: email,
			LastName: name,
			Role:     constants.RoleUser,
			Status:   constants.UserStatusActive,
		})
		if err != nil {
			return nil, "", err
		}
		s.logger.Info("Đã tạo tài khoản Google %d (%s)", user.ID, email)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60, true)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}

// SetUserStatus khóa hoặc mở khóa tài khoản.
func (s *AuthService) SetUserStatus(ctx context.Context, id uint, status int) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusInactive {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "trạng thái tài khoản không hợp lệ", nil)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	return s.users.Update(ctx, user)
}

// findByIdentifier tìm user theo email hoặc username, không thấy trả về
// nil.
func (s *AuthService) findByIdentifier(ctx context.Context, identifier string) *models.User {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		if !stderrors.Is(err, errors.ErrEmptyList) {
			s.logger.Error("Lỗi tìm user %q: %v", identifier, err)
		}
		return nil
	}
	for _, u := range all {
		if u.Email == identifier || u.Username == identifier {
			return u
		}
	}
	return nil
}
