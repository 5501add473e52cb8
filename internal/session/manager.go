package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "session"

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// Session is what a valid token resolves to.
type Session struct {
	ID       string
	UserID   uint
	UserType string
}

// Manager issues HS256 tokens whose jti must also be present in the store,
// so signing out revokes a token before it expires.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(ctx context.Context, userID uint, userType string) (string, error) {
	id := uuid.NewString()
	now := m.now()

	claims := Claims{
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Save(ctx, id, userID, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (m *Manager) Parse(ctx context.Context, tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	sub, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := m.store.Get(ctx, claims.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if userID != uint(sub) {
		return nil, ErrInvalidToken
	}

	return &Session{ID: claims.ID, UserID: userID, UserType: claims.UserType}, nil
}

func (m *Manager) Revoke(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
