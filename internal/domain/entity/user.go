package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// User representa un cliente registrado en el showroom.
// Username es la identidad: siempre recortado y en minúsculas.
type User struct {
	Username     string
	PasswordHash string // "salt:hash" (SHA-256) o hash bcrypt, nunca plano
	FullName     string
	Email        string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

func (u *User) String() string {
	return "User{username='" + u.Username + "', fullName='" + u.FullName +
		"', email='" + u.Email + "', phone='" + u.Phone + "'}"
}

// NormalizeUsername recorta y pasa a minúsculas: la forma canónica de la clave.
func NormalizeUsername(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
