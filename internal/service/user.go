package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"AdminDashboard/internal/model"
	"AdminDashboard/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginTaken         = errors.New("login already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrLastAdmin          = errors.New("cannot remove the last admin")
)

// UserService: бизнес-логика пользователей админ-панели.
type UserService struct {
	repo repo.UserRepository
	// mu сериализует создание пользователей в процессе: подсчёт «первого» и вставка не перемешиваются
	mu sync.Mutex
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

func validateCredentials(login, password string) error {
	if strings.TrimSpace(login) == "" || password == "" {
		return fmt.Errorf("%w: login and password are required", ErrInvalidInput)
	}
	if len(login) > 64 {
		return fmt.Errorf("%w: login too long", ErrInvalidInput)
	}
	return nil
}

// lookup переводит «не найдено» репозитория в (nil, nil).
func (s *UserService) lookup(ctx context.Context, login string) (*model.User, error) {
	return lookupIn(ctx, s.repo, login)
}

func lookupIn(ctx context.Context, r repo.UserRepository, login string) (*model.User, error) {
	u, err := r.GetUserByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return u, err
}

// Register создаёт пользователя. Первый пользователь системы получает роль admin.
// Подсчёт и вставка идут в одной транзакции.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	if err := validateCredentials(login, password); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var created *model.User
	err := s.repo.WithTx(ctx, func(r repo.UserRepository) error {
		n, err := r.CountUsers(ctx)
		if err != nil {
			return err
		}
		role := model.RoleViewer
		if n == 0 {
			role = model.RoleAdmin
		}
		created, err = create(ctx, r, login, password, role)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Create adds a user with the given role.
func (s *UserService) Create(ctx context.Context, login, password, role string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return create(ctx, s.repo, login, password, role)
}

func create(ctx context.Context, r repo.UserRepository, login, password, role string) (*model.User, error) {
	if err := validateCredentials(login, password); err != nil {
		return nil, err
	}
	if role == "" {
		role = model.RoleViewer
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	existing, err := lookupIn(ctx, r, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u, err := r.CreateUser(ctx, &model.User{
		PublicID: uuid.NewString(),
		Login:    login,
		Password: string(hash),
		Role:     role,
	})
	// гонка с другим процессом: уникальный индекс сработал после проверки
	if errors.Is(err, repo.ErrDuplicateLogin) {
		return nil, ErrLoginTaken
	}
	return u, err
}

// Login проверяет пароль.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	u, err := s.lookup(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns a user by public id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.GetUserByPublicID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// SetRole changes a user's role. The last admin cannot be demoted.
func (s *UserService) SetRole(ctx context.Context, id, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == model.RoleAdmin && role != model.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, u.PublicID); err != nil {
			return nil, err
		}
	}
	u.Role = role
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces a user's password.
func (s *UserService) SetPassword(ctx context.Context, id, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return s.repo.UpdateUser(ctx, u)
}

// Delete removes a user. The last admin cannot be deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == model.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, u.PublicID); err != nil {
			return err
		}
	}
	err = s.repo.DeleteUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *UserService) ensureAnotherAdmin(ctx context.Context, exceptID string) error {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, o := range users {
		if o.Role == model.RoleAdmin && o.PublicID != exceptID {
			return nil
		}
	}
	return ErrLastAdmin
}
