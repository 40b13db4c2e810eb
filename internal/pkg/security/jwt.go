package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"panganjawara/internal/api/config"

	"github.com/golang-jwt/jwt/v5"
)

func secret() []byte {
	return []byte(config.Cfg.Portal.JWTSecret)
}

// GenerateToken membuat JWT untuk akun admin.
func GenerateToken(userID uint64, username, role string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTExpirationTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "PanganJawara",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret())
	if err != nil {
		return "", fmt.Errorf("gagal menandatangani token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken memverifikasi token dan mengembalikan claims-nya.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode tanda tangan tidak dikenal: %v", token.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token tidak dapat diurai: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token tidak valid atau kedaluwarsa")
	}

	return claims, nil
}

// ExtractSignature mengambil bagian tanda tangan token, dipakai sebagai
// key blacklist di redis saat logout.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("format token tidak benar")
	}
	return parts[2], nil
}
