package repositories

import (
	"errors"

	"gorm.io/gorm"
	"shipment-proof-service/core"
	"shipment-proof-service/models"
)

// UserRepository is the repo for accessing users and organizations
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) CreateOrganization(org *models.Organization) error {
	return r.db.Create(org).Error
}

func (r *UserRepository) CreateUser(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.Conflict("a user with this email already exists", map[string]any{
			"email": user.Email,
		})
	}
	return err
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("user", email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
