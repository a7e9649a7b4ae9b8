package utils

import (
	"crs/src/config"
	"crs/src/types"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`[^@]+@[^@]+\.[^@]+`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT issues the bearer credential for a user. The subject claim
// carries the user id; the jti backs token revocation.
func GenerateJWT(username string, userId uint) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TOKEN_TTL)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// ParseSeatNumber splits a seat code like "A12" into its row letter and
// column number.
func ParseSeatNumber(code string) (string, int, error) {
	if len(code) < 2 {
		return "", 0, fmt.Errorf("invalid seat number %q", code)
	}
	r := code[0]
	if !('A' <= r && r <= 'Z') && !('a' <= r && r <= 'z') {
		return "", 0, fmt.Errorf("invalid seat number %q: row is not a letter", code)
	}
	row := string(r)
	column, err := strconv.Atoi(code[1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid seat number %q: column is not numeric", code)
	}
	return row, column, nil
}

// TotalPages computes the page count for offset pagination.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return pages
}

// NaturalTime renders a timestamp relative to now ("2 days ago",
// "1 hour from now").
func NaturalTime(t time.Time) string {
	return humanize.Time(t)
}

// BindingErrorMessage maps validator failures to the API's error
// strings; anything unrecognized falls through to the raw error.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "dateonly":
			return "Invalid release date format. Use YYYY-MM-DD"
		case "datetimefmt":
			return "Invalid start time format. Use YYYY-MM-DD HH:MM:SS"
		case "max":
			return fmt.Sprintf("%s must be <= %s characters", fe.Field(), fe.Param())
		case "min":
			if fe.Kind().String() == "string" {
				return fmt.Sprintf("%s must be >= %s characters", fe.Field(), fe.Param())
			}
		case "required":
			return "Missing required fields"
		}
	}
	return err.Error()
}
