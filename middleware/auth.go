package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"staffdesk/models"
	"staffdesk/store"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const EmployeeContextKey contextKey = "employee"

type Claims struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employeeId"`
	Role       models.Role `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(emp *models.Employee, expiration time.Duration) (string, error) {
	claims := &Claims{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		Role:       emp.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// Authenticate verifies the bearer token and loads the caller's identity
// from the directory, so a deleted employee's token stops working
// immediately.
func Authenticate(employees store.EmployeeStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenString string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}

			if tokenString == "" {
				writeError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := ValidateToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			emp, err := employees.GetByID(claims.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to load employee")
				return
			}
			if emp == nil {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), EmployeeContextKey, emp)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			emp := GetEmployeeFromContext(r.Context())
			if emp == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			for _, role := range roles {
				if emp.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, http.StatusForbidden, "Access denied. Admin only.")
		})
	}
}

func GetEmployeeFromContext(ctx context.Context) *models.Employee {
	emp, ok := ctx.Value(EmployeeContextKey).(*models.Employee)
	if !ok {
		return nil
	}
	return emp
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
