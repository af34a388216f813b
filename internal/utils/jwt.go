package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"gecos_backend/internal/models"
)

var (
	jwtSecret []byte
	tokenTTL  = 240 * time.Hour
)

// Init sets the signing secret and token lifetime from configuration.
// Must be called before issuing or parsing tokens.
func Init(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// GenerateToken issues a signed token for the user. The JTI is what the
// revocation list tracks, so logout can invalidate a stateless token.
func GenerateToken(userID uint, role models.UserRole) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(tokenTTL)

	claims := Claims{
		UserID: userID,
		Role:   string(role),
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(jwtSecret)
}

// ParseToken validates a token and returns its claims.
func ParseToken(token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
