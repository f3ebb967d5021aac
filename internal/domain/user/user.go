package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the account aggregate. A user with the admin role owns no tenant
// resources; tenant owners hold role "user" and own channels, contacts,
// automations and campaigns through createdBy references.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	role         string
	permissions  []string
	pushToken    *string
	status       string
	createdAt    time.Time
	updatedAt    time.Time
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// NewUser creates a new active user with a bcrypt-hashed password.
func NewUser(email, name, plainPassword, role string, bcryptCost int) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(plainPassword) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		passwordHash: string(hash),
		role:         role,
		permissions:  []string{},
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email, name, passwordHash, role string,
	permissions []string,
	pushToken *string,
	status string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if permissions == nil {
		permissions = []string{}
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		permissions:  permissions,
		pushToken:    pushToken,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) Email() string         { return u.email }
func (u *User) Name() string          { return u.name }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() string          { return u.role }
func (u *User) Permissions() []string { return u.permissions }
func (u *User) PushToken() *string    { return u.pushToken }
func (u *User) Status() string        { return u.status }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsAdmin reports whether the user holds the privileged administrative role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// VerifyPassword compares a plaintext password against the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)) == nil
}

// RegisterPushToken stores the device push-registration token.
func (u *User) RegisterPushToken(token string) error {
	if token == "" {
		return fmt.Errorf("push token is required")
	}
	u.pushToken = &token
	u.updatedAt = time.Now()
	return nil
}

// ClearPushToken removes the device push-registration token.
func (u *User) ClearPushToken() {
	u.pushToken = nil
	u.updatedAt = time.Now()
}

// GrantPermissions replaces the stored permission list.
func (u *User) GrantPermissions(permissions []string) {
	if permissions == nil {
		permissions = []string{}
	}
	u.permissions = permissions
	u.updatedAt = time.Now()
}
