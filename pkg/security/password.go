// Package security agrupa el hash de contraseñas y los validadores de formato
// usados en el registro de usuarios.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const saltBytes = 16

// PasswordHasher estrategia de hash intercambiable. Verify nunca devuelve error:
// un hash almacenado corrupto simplemente no coincide.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// GenerateSalt devuelve 16 bytes aleatorios (crypto/rand) en base64.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("security: generar salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// HashPassword calcula SHA-256(salt || password) y devuelve "salt:hash",
// ambos en base64. El salt debe venir en base64.
func HashPassword(password, salt string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("security: salt inválido: %w", err)
	}
	h := sha256.New()
	h.Write(raw)
	h.Write([]byte(password))
	return salt + ":" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// VerifyPassword recalcula el hash con el salt de stored y compara la cadena completa.
func VerifyPassword(password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	expected, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return expected == stored
}

// SaltedSHA256 formato histórico "salt:hash". Es el default para no invalidar
// los users.dat existentes.
type SaltedSHA256 struct{}

func (SaltedSHA256) Hash(password string) (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return HashPassword(password, salt)
}

func (SaltedSHA256) Verify(password, stored string) bool {
	return VerifyPassword(password, stored)
}

// Bcrypt genera hashes bcrypt y sigue aceptando los "salt:hash" heredados.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("security: bcrypt: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Verify(password, stored string) bool {
	if !isBcryptHash(stored) {
		return VerifyPassword(password, stored)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// NewHasher resuelve la estrategia por nombre ("sha256" | "bcrypt").
func NewHasher(name string, bcryptCost int) (PasswordHasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256":
		return SaltedSHA256{}, nil
	case "bcrypt":
		return Bcrypt{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("security: estrategia de hash desconocida %q", name)
	}
}
