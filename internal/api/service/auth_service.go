package service

import (
	"context"
	"errors"
	"time"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/middleware/auth"
	"bloghub/internal/api/models"
	"bloghub/internal/api/repository"
	"bloghub/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrEmailInUse         = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrInvalidToken       = errors.New("invalid or expired jwt token")
)

// Claims is the decoded token payload attached to authenticated requests.
type Claims struct {
	UserID string
}

type AuthService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	IssueToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry, // 1 day
	}
}

// Register creates a new account. The email uniqueness check runs before the
// insert; the unique index on the column backstops the race between the two.
func (s *authService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Wallet:   req.Wallet,
		Address:  req.Address,
		Phone:    req.Phone,
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by email and returns a signed session token. Unknown
// accounts and wrong passwords produce distinct sentinel errors; the handler
// maps both to generic 400 messages.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// dummy compare so unknown accounts take as long as bad passwords
			auth.VerifyPassword("$2a$12$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
			return "", nil, ErrAccountNotFound
		}
		return "", nil, err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// IssueToken signs a compact token carrying the user id with the fixed
// configured expiry. Single static secret, no rotation.
func (s *authService) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.jwtExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature and expiry and returns the embedded payload.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mapClaims["id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID}, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.jwtExpiry
}
