package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed   = errors.New("token malformed")
)

// Claims carry the account identifier a token was issued for.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens. It holds the process-wide
// signing key and the configured token lifetime; it keeps no other state
// and never touches the database.
type Service struct {
	key []byte
	ttl time.Duration
}

func NewService(key []byte, ttl time.Duration) *Service {
	return &Service{key: key, ttl: ttl}
}

// Issue produces a signed token for the given account id, expiring after
// the configured TTL.
func (s *Service) Issue(accountID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := Claims{
		ID: accountID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks the token's signature and expiry and returns the account
// id it was issued for. It is a purely local check.
func (s *Service) Verify(tokenStr string) (primitive.ObjectID, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return primitive.NilObjectID, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return primitive.NilObjectID, ErrInvalidSignature
		default:
			return primitive.NilObjectID, ErrTokenMalformed
		}
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return primitive.NilObjectID, ErrTokenMalformed
	}

	accountID, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return primitive.NilObjectID, ErrTokenMalformed
	}
	return accountID, nil
}
