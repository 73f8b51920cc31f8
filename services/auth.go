package services

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shipment-proof-service/core"
	"shipment-proof-service/models"
	"shipment-proof-service/repositories"
)

// Claims is the JWT payload issued at login and trusted by the middleware.
type Claims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService is the identity collaborator: it registers organizations with
// their first user and exchanges credentials for signed tokens.
type AuthService struct {
	logger     *zap.Logger
	db         *gorm.DB
	users      *repositories.UserRepository
	jwtSecret  []byte
	tokenHours int
}

func NewAuthService(logger *zap.Logger, db *gorm.DB, jwtSecret string, tokenHours int) *AuthService {
	return &AuthService{
		logger:     logger,
		db:         db,
		users:      repositories.NewUserRepository(db),
		jwtSecret:  []byte(jwtSecret),
		tokenHours: tokenHours,
	}
}

// Register creates an organization and its first user in one transaction.
func (s *AuthService) Register(organizationName, email, password string) (*models.User, error) {
	if organizationName == "" || email == "" {
		return nil, core.InvalidArgument("organizationName and email are required")
	}
	if len(password) < 8 {
		return nil, core.InvalidArgument("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		ID:   uuid.NewString(),
		Name: organizationName,
	}
	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   string(hash),
		OrganizationID: org.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if err := users.CreateOrganization(org); err != nil {
			return err
		}
		return users.CreateUser(user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Organization registered",
		zap.String("organization_id", org.ID),
		zap.String("user_id", user.ID),
	)
	return user, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return "", core.InvalidArgument("invalid email or password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", core.InvalidArgument("invalid email or password")
	}

	now := time.Now()
	claims := &Claims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.tokenHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a bearer token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, core.InvalidArgument("invalid or expired token")
	}
	return claims, nil
}
