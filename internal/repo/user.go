package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"AdminDashboard/internal/model"

	"gorm.io/gorm"
)

// UserRepository: доступ к пользователям для слоя сервиса.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByPublicID(ctx context.Context, publicID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, publicID string) error
	// WithTx выполняет fn в одной транзакции; репозиторий внутри fn работает на ней.
	WithTx(ctx context.Context, fn func(UserRepository) error) error
}

// ErrDuplicateLogin: вставка нарушила уникальность логина.
var ErrDuplicateLogin = errors.New("duplicate login")

// isUniqueViolation распознаёт нарушение уникального индекса у postgres и sqlite.
// Драйвер modernc не переводится gorm в ErrDuplicatedKey, поэтому проверяем и текст.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505")
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLogin, user.Login)
		}
		return nil, err
	}
	return user, nil
}

// GetUserByLogin возвращает gorm.ErrRecordNotFound, если пользователя нет.
func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByPublicID(ctx context.Context, publicID string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

func (r *userRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Model(user).Select("Password", "Role").Updates(user).Error
}

// DeleteUser возвращает gorm.ErrRecordNotFound, если удалять нечего.
func (r *userRepo) DeleteUser(ctx context.Context, publicID string) error {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) WithTx(ctx context.Context, fn func(UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepo{db: tx})
	})
}
