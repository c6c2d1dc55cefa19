package processor

import (
	"context"
	"errors"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	bcryptCost = 12
	tokenTTL   = 24 * time.Hour
	// TokenExpiresIn is the human readable lifetime returned with every token
	TokenExpiresIn = "24h"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedSignup       = errors.New("failed to sign up")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

type AuthProcessor struct {
	store        AuthStore
	jwtSecret    string
	emailService EmailService
	logger       *observability.Logger
}

func New(store AuthStore, jwtSecret string, emailService EmailService, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:        store,
		jwtSecret:    jwtSecret,
		emailService: emailService,
		logger:       logger,
	}
}

// User is the public view of a registered user
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthenticatedUser is the identity attached to a request by the bearer middleware
type AuthenticatedUser struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthResult is returned by a successful register or login
type AuthResult struct {
	User      User
	Token     string
	ExpiresIn string
}

func toUser(u store.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register creates a user and signs a token for it
func (p *AuthProcessor) Register(ctx context.Context, params RegisterParams) (AuthResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: params.Email})

	exists, err := p.store.CheckIfEmailExists(ctx, params.Email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return AuthResult{}, ErrFailedSignup
	}
	if exists {
		p.logger.Info(ctx, "registration rejected, email already exists")
		return AuthResult{}, ErrEmailAlreadyExists
	}

	role := params.Role
	if role == "" {
		role = RoleAdmin
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return AuthResult{}, ErrFailedSignup
	}

	created, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        params.Email,
		PasswordHash: string(hashedPassword),
		Name:         params.Name,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			// lost a race against a concurrent registration
			return AuthResult{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return AuthResult{}, ErrFailedSignup
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: created.ID.String()})

	token, err := p.generateJWTToken(ctx, created)
	if err != nil {
		return AuthResult{}, err
	}

	if err := p.emailService.SendWelcomeEmail(ctx, created.Email, created.Name); err != nil {
		p.logger.InfoWithError(ctx, "welcome email not sent", err)
	}

	p.logger.Info(ctx, "user registered")
	return AuthResult{User: toUser(created), Token: token, ExpiresIn: TokenExpiresIn}, nil
}

// Login checks the password and signs a new token
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (AuthResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "login rejected, unknown email")
			return AuthResult{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return AuthResult{}, ErrFailedSignIn
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.Info(ctx, "login rejected, wrong password")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	p.logger.Info(ctx, "user logged in")
	return AuthResult{User: toUser(user), Token: token, ExpiresIn: TokenExpiresIn}, nil
}

// GetProfile returns the user behind an authenticated request
func (p *AuthProcessor) GetProfile(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return User{}, err
	}
	return toUser(user), nil
}

// Authenticate validates a bearer token and confirms its user still exists
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (AuthenticatedUser, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return AuthenticatedUser{}, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		p.logger.Error(ctx, "token subject is not a uuid", err)
		return AuthenticatedUser{}, ErrInvalidJWTToken
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthenticatedUser{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to load token user", err)
		return AuthenticatedUser{}, err
	}

	return AuthenticatedUser{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}
