package jwt

import (
	"Groeneweide-Backend/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		Enabled() bool
		GenerateToken(subject string, role string, ttl time.Duration) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, string, error)
	}

	jwtClaim struct {
		Subject string `json:"sub_id"`
		Role    string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

// NewJWTService returns a service that signs with HS256. An empty secret
// disables authentication for mutating routes.
func NewJWTService(secretKey, issuer string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

func (j *jwtService) Enabled() bool {
	return j.secretKey != ""
}

func (j *jwtService) GenerateToken(subject string, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaim{
		subject,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
