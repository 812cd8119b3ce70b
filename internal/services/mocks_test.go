package services

import (
	"errors"
	"sync"
	"time"

	"adira_backend/internal/models"
	"adira_backend/internal/repositories"

	"github.com/google/uuid"
)

var errSMTPDown = errors.New("smtp unavailable")

// In-memory репозитории для тестов сервисов: поведение повторяет
// контракт gorm-реализаций, включая классификацию дубликатов
// и атомарное потребление токена верификации.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return repositories.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByLoginIdentity(identity string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == identity || u.Email == identity {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmailVerificationToken != nil && *u.EmailVerificationToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) ConsumeVerificationToken(token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmailVerificationToken != nil && *u.EmailVerificationToken == token && !u.EmailVerified {
			u.EmailVerified = true
			u.EmailVerificationToken = nil
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) UpdateProfile(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.FirstName = user.FirstName
	u.LastName = user.LastName
	u.DateOfBirth = user.DateOfBirth
	u.PhoneNumber = user.PhoneNumber
	return nil
}

// setVerified напрямую помечает пользователя верифицированным (arrange-хелпер)
func (r *memUserRepo) setVerified(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.EmailVerified = true
	}
}

type memRevokedRepo struct {
	mu   sync.Mutex
	jtis map[string]time.Time
}

func newMemRevokedRepo() *memRevokedRepo {
	return &memRevokedRepo{jtis: make(map[string]time.Time)}
}

func (r *memRevokedRepo) Revoke(token *models.RevokedToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// повторный отзыв того же jti - не ошибка
	r.jtis[token.JTI] = token.ExpiresAt
	return nil
}

func (r *memRevokedRepo) IsRevoked(jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jtis[jti]
	return ok, nil
}

func (r *memRevokedRepo) CleanExpired() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for jti, exp := range r.jtis {
		if exp.Before(now) {
			delete(r.jtis, jti)
		}
	}
	return nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products []*models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{}
}

func (r *memProductRepo) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	clone := *product
	r.products = append(r.products, &clone)
	return nil
}

func (r *memProductRepo) FindByID(id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (r *memProductRepo) FindAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// новые первыми, как ORDER BY created_at DESC
	out := make([]models.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, *r.products[i])
	}
	return out, nil
}

func (r *memProductRepo) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID {
			p.Name = product.Name
			p.Description = product.Description
			p.Price = product.Price
			p.Stock = product.Stock
			p.IsActive = product.IsActive
			p.OnSale = product.OnSale
			return nil
		}
	}
	return repositories.ErrProductNotFound
}

func (r *memProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repositories.ErrProductNotFound
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

// recordingEmailProvider фиксирует отправленные письма;
// fail=true имитирует недоступный SMTP
type recordingEmailProvider struct {
	mu   sync.Mutex
	sent []sentEmail
	fail bool
}

func (p *recordingEmailProvider) Send(to, subject, body string) error {
	if p.fail {
		return errSMTPDown
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func (p *recordingEmailProvider) SendVerification(to, firstName, verificationURL string) error {
	return p.Send(to, "Verify your email address", "Hi, "+firstName+", Please click the following link to verify your email address: "+verificationURL)
}
