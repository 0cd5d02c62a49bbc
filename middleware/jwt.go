package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scholarhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	identityKey = "identity"
	userIDKey   = "userId"
)

// IdentityClaims is the token payload issued by the identity provider
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTVerifier checks HS256 bearer tokens. The subject claim is the user's uid.
type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

// GenerateJWT issues a token for identity valid for ttl
func (v *JWTVerifier) GenerateJWT(identity models.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *JWTVerifier) Verify(tokenString string) (models.Identity, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, fmt.Errorf("invalid token: %w", err)
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return models.Identity{}, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("token has no subject")
	}
	return models.Identity{UID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

// UserEnsurer creates the profile row for a newly seen identity
type UserEnsurer interface {
	EnsureUser(ctx context.Context, identity models.Identity) (*models.User, error)
}

// JWTMiddleware verifies the bearer token, makes sure the user exists and stores the identity in Locals.
func JWTMiddleware(verifier *JWTVerifier, users UserEnsurer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		identity, err := verifier.Verify(authHeader[len("Bearer "):])
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}
		if _, err := users.EnsureUser(c.UserContext(), identity); err != nil {
			return ErrorResponse(c, err)
		}

		c.Locals(identityKey, identity)
		c.Locals(userIDKey, identity.UID)
		return c.Next()
	}
}

// CurrentUserID returns the uid set by JWTMiddleware
func CurrentUserID(c *fiber.Ctx) string {
	uid, _ := c.Locals(userIDKey).(string)
	return uid
}

func CurrentIdentity(c *fiber.Ctx) models.Identity {
	identity, _ := c.Locals(identityKey).(models.Identity)
	return identity
}
