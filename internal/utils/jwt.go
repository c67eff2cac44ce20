package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lyra-school/lyra-client/models"
)

var (
	// ErrInvalidSessionTokenParams is returned when the codec is asked to
	// sign without a key or issuer.
	ErrInvalidSessionTokenParams = errors.New("invalid params for session token")

	// ErrInvalidSessionToken is returned for a stored value that cannot be
	// parsed, has a bad signature, or carries incomplete claims.
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// SessionClaims is the payload of the persisted session. It carries the
// session identity only.
type SessionClaims struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SessionTokenCodec signs sessions into HS256 JWTs and verifies them back.
// Tokens carry no expiry: a session lasts until explicit logout.
type SessionTokenCodec struct {
	signKey []byte
	issuer  string
	now     func() time.Time
}

// NewSessionTokenCodec builds a codec for the given key and issuer.
func NewSessionTokenCodec(signKey, issuer string) *SessionTokenCodec {
	return &SessionTokenCodec{signKey: []byte(signKey), issuer: issuer, now: time.Now}
}

// Encode signs session.
//
// The token includes:
//   - id, name, email, role: the session identity
//   - Issuer   (iss): the configured issuer
//   - Subject  (sub): the user id encoded as a string
//   - IssuedAt (iat): the current time
func (c *SessionTokenCodec) Encode(session models.Session) (string, error) {
	if len(c.signKey) == 0 || c.issuer == "" {
		return "", ErrInvalidSessionTokenParams
	}

	claims := &SessionClaims{
		ID:    session.ID,
		Name:  session.Name,
		Email: session.Email,
		Role:  string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   c.issuer,
			Subject:  strconv.FormatInt(session.ID, 10),
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature and issuer of tokenString and returns the
// session it carries. Any failure wraps [ErrInvalidSessionToken].
func (c *SessionTokenCodec) Decode(tokenString string) (models.Session, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return c.signKey, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	if claims.ID == 0 || claims.Email == "" {
		return models.Session{}, fmt.Errorf("%w: incomplete claims", ErrInvalidSessionToken)
	}

	return models.Session{
		ID:    claims.ID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  models.ParseRole(claims.Role),
	}, nil
}
