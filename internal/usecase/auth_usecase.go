package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/go-playground/validator/v10"
)

var (
	//400 入力不足
	ErrAuthValidation = errors.New("validation error")
	//409 email重複
	ErrEmailTaken = errors.New("email already taken")
	//401 認証失敗
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// パスワードのハッシュ化（会員登録）
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// パスワードの照合（ログイン）
type PasswordVerifier interface {
	Verify(hash string, plain string) error
}

// アクセストークンの発行。実装はmain.goのjwtIssuer。
type TokenIssuer interface {
	Issue(userID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

type Clock interface {
	Now() time.Time
}

type AuthUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
	validate *validator.Validate
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
		validate: validator.New(),
	}
}

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type LoginOutput struct {
	UserID      int64
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

// 会員登録。email重複はErrEmailTaken。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := u.validate.Struct(in); err != nil {
		return nil, ErrAuthValidation
	}

	existing, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	user := &model.User{
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ログイン。成功でアクセストークンを返す。
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (LoginOutput, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return LoginOutput{}, err
	}
	if user == nil {
		return LoginOutput{}, ErrInvalidCredentials
	}

	if err := u.verifier.Verify(user.PasswordHash, password); err != nil {
		return LoginOutput{}, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, now)
	if err != nil {
		return LoginOutput{}, err
	}

	//最終ログインを更新（失敗してもログインは成立させる）
	user.LastLoginAt = &now
	user.UpdatedAt = now
	_ = u.userRepo.Update(ctx, user)

	return LoginOutput{
		UserID:      user.ID,
		Email:       user.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
