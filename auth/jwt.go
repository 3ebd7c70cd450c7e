package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 72 * time.Hour

// issueJWT signs a session token for a customer, seller or guest.
func issueJWT(id, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    role,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
