package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrAuthFailed = errors.New("authentication failed")

const tokenTTL = 24 * time.Hour

type Service struct {
	store  *Store
	secret []byte
}

func NewService(db *sql.DB, secret []byte) *Service {
	return &Service{store: NewStore(db), secret: secret}
}

func (s *Service) Secret() []byte { return s.secret }

// Login verifies the credentials and returns a signed token plus the
// identity the client persists for the session.
func (s *Service) Login(ctx context.Context, username, password string) (string, Identity, error) {
	acct, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return "", Identity{}, err
	}
	if acct == nil {
		return "", Identity{}, ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", Identity{}, ErrAuthFailed
	}

	claims := jwt.MapClaims{
		"sub":  acct.ID,
		"role": acct.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	if acct.AssignedSlotID != nil {
		claims["slot"] = *acct.AssignedSlotID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", Identity{}, err
	}
	return signed, acct.identity(), nil
}

// Me re-reads the account so /auth/me reflects edits made after login.
func (s *Service) Me(ctx context.Context, userID string) (Identity, error) {
	acct, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return Identity{}, err
	}
	if acct == nil {
		return Identity{}, ErrAuthFailed
	}
	return acct.identity(), nil
}
