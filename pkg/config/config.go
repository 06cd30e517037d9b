package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Security SecurityConfig
	Session  SessionConfig
	Showroom ShowroomConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StoreConfig ubicación de los archivos planos (users.dat, bookings.dat).
type StoreConfig struct {
	DataDir string
}

// SecurityConfig estrategia de hash de contraseñas.
type SecurityConfig struct {
	PasswordHasher string // "sha256" (compatible con datos existentes) o "bcrypt"
	BcryptCost     int
}

// SessionConfig firma del token de sesión que usa la CLI entre invocaciones.
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// ShowroomConfig datos del concesionario impresos en la cabecera de la factura.
type ShowroomConfig struct {
	Name       string
	Address    string
	Phone      string
	GSTIN      string
	InvoiceDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	env := getString(v, "APP_ENV", "development")

	// En development se permite un secreto fijo para no obligar a configurar nada.
	defaultSecret := ""
	if env == "development" {
		defaultSecret = "jawa-showroom-dev-secret"
	}

	return &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "jawa-showroom"),
			LogLevel: getString(v, "LOG_LEVEL", "warn"),
		},
		Store: StoreConfig{
			DataDir: getString(v, "DATA_DIR", "data"),
		},
		Security: SecurityConfig{
			PasswordHasher: strings.ToLower(getString(v, "PASSWORD_HASHER", "sha256")),
			BcryptCost:     getInt(v, "BCRYPT_COST", 10),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", defaultSecret),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "jawa-showroom"),
		},
		Showroom: ShowroomConfig{
			Name:       getString(v, "SHOWROOM_NAME", "Jawa Bikes - Authorised Dealership"),
			Address:    getString(v, "SHOWROOM_ADDRESS", "123, Heritage Road, Pune, Maharashtra - 411001"),
			Phone:      getString(v, "SHOWROOM_PHONE", "+91-20-12345678"),
			GSTIN:      getString(v, "SHOWROOM_GSTIN", "27AABCJ1234A1ZS"),
			InvoiceDir: getString(v, "INVOICE_DIR", "."),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
