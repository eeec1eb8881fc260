package identity

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/at-ishikawa/examprep/internal/yamlfile"
)

//go:generate mockgen -source=provider.go -destination=../mocks/identity/mock_provider.go -package=mock_identity

var (
	ErrNoSession          = errors.New("not signed in")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("an account with this email already exists")
)

const (
	DefaultAdminEmail = "admin@ssc.com"

	sessionFileName  = "session.yml"
	accountsFileName = "accounts.yml"
	bcryptCost       = 12

	demoStudentID = "5"
	demoAdminID   = "admin"
	newUserRank   = 1247
)

// Provider signs learners in and out.
type Provider interface {
	// Load returns the signed-in user, or ErrNoSession.
	Load(ctx context.Context) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Register(ctx context.Context, name, email, password string) (*User, error)
	Clear(ctx context.Context) error
}

type account struct {
	User         User   `yaml:"user"`
	PasswordHash string `yaml:"password_hash"`
}

// FileProvider keeps the session and registered accounts as YAML files in a directory.
// Emails without an account sign in as a demo identity, and demo logins skip
// password checks: any non-empty password is accepted, including for the admin email.
type FileProvider struct {
	dir        string
	adminEmail string
	now        func() time.Time
}

func NewFileProvider(dir, adminEmail string) *FileProvider {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	return &FileProvider{
		dir:        dir,
		adminEmail: normalizeEmail(adminEmail),
		now:        time.Now,
	}
}

func (p *FileProvider) sessionPath() string {
	return filepath.Join(p.dir, sessionFileName)
}

func (p *FileProvider) accountsPath() string {
	return filepath.Join(p.dir, accountsFileName)
}

func (p *FileProvider) Load(ctx context.Context) (*User, error) {
	user, err := yamlfile.ReadOptional[*User](p.sessionPath())
	if err != nil {
		return nil, fmt.Errorf("yamlfile.ReadOptional() > %w", err)
	}
	if user == nil || user.ID == "" {
		return nil, ErrNoSession
	}
	return user, nil
}

func (p *FileProvider) Login(ctx context.Context, email, password string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	accounts, err := p.accounts()
	if err != nil {
		return nil, err
	}

	var user User
	if acc, ok := findAccount(accounts, email); ok {
		if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user = acc.User
	} else {
		user = p.demoUser(email)
	}

	if err := yamlfile.Write(p.sessionPath(), user); err != nil {
		return nil, fmt.Errorf("yamlfile.Write() > %w", err)
	}
	return &user, nil
}

func (p *FileProvider) Register(ctx context.Context, name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	accounts, err := p.accounts()
	if err != nil {
		return nil, err
	}
	if _, ok := findAccount(accounts, email); ok || email == p.adminEmail {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword() > %w", err)
	}
	user := User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     RoleStudent,
		JoinedAt: p.now().UTC(),
		Rank:     newUserRank,
	}
	accounts = append(accounts, account{User: user, PasswordHash: string(hash)})
	if err := yamlfile.Write(p.accountsPath(), accounts); err != nil {
		return nil, fmt.Errorf("yamlfile.Write() > %w", err)
	}
	if err := yamlfile.Write(p.sessionPath(), user); err != nil {
		return nil, fmt.Errorf("yamlfile.Write() > %w", err)
	}
	return &user, nil
}

// Clear signs out. Signing out without a session is not an error.
func (p *FileProvider) Clear(ctx context.Context) error {
	if err := yamlfile.Write[*User](p.sessionPath(), nil); err != nil {
		return fmt.Errorf("yamlfile.Write() > %w", err)
	}
	return nil
}

// Users lists registered accounts, for the admin console.
func (p *FileProvider) Users(ctx context.Context) ([]User, error) {
	accounts, err := p.accounts()
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(accounts))
	for _, acc := range accounts {
		users = append(users, acc.User)
	}
	return users, nil
}

func (p *FileProvider) accounts() ([]account, error) {
	accounts, err := yamlfile.ReadOptional[[]account](p.accountsPath())
	if err != nil {
		return nil, fmt.Errorf("yamlfile.ReadOptional() > %w", err)
	}
	return accounts, nil
}

func (p *FileProvider) demoUser(email string) User {
	user := User{
		ID:          demoStudentID,
		Name:        "Student User",
		Email:       email,
		Role:        RoleStudent,
		JoinedAt:    p.now().UTC(),
		Streak:      7,
		TotalPoints: 1250,
		Rank:        42,
	}
	if email == p.adminEmail {
		user.ID = demoAdminID
		user.Name = "Admin User"
		user.Role = RoleAdmin
	}
	return user
}

func findAccount(accounts []account, email string) (account, bool) {
	for _, acc := range accounts {
		if acc.User.Email == email {
			return acc, true
		}
	}
	return account{}, false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
