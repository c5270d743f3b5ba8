package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Actor identidad que firma los movimientos del libro (operador de frota, almoxarife, etc.).
type Actor struct {
	ID       string
	Role     string
	BranchID int64
}

// Claims claims estándar más el actor. El token lo emite el servicio de identidad externo.
type Claims struct {
	jwt.RegisteredClaims
	ActorID  string `json:"actor_id"`
	Role     string `json:"role,omitempty"`
	BranchID int64  `json:"branch_id,omitempty"`
}

// Generate firma un token HS256 para el actor. Lo usan tests y herramientas internas.
func Generate(secret, issuer string, actor Actor, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: secret vacío")
	}
	if actor.ID == "" {
		return "", errors.New("jwt: actor vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ActorID:  actor.ID,
		Role:     actor.Role,
		BranchID: actor.BranchID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma, expiración y (si issuer no está vacío) el emisor, y devuelve el actor.
// Si el token no trae actor_id se usa el subject.
func Parse(secret, issuer, tokenString string) (Actor, error) {
	if secret == "" {
		return Actor{}, errors.New("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Actor{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Actor{}, fmt.Errorf("claims inválidos")
	}
	actorID := claims.ActorID
	if actorID == "" {
		actorID = claims.Subject
	}
	if actorID == "" {
		return Actor{}, errors.New("jwt: token sin actor")
	}
	return Actor{ID: actorID, Role: claims.Role, BranchID: claims.BranchID}, nil
}
