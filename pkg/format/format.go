// Package format contiene helpers de presentación compartidos: moneda INR,
// fechas, centrado de texto y generación de IDs de reserva.
package format

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateTimeLayout formato dd-MM-yyyy HH:mm:ss usado en archivos y facturas.
const DateTimeLayout = "02-01-2006 15:04:05"

// DateLayout formato dd-MM-yyyy.
const DateLayout = "02-01-2006"

const rupee = "₹"

// INR formatea un monto como rupias con agrupación india y 2 decimales.
// Ej: 254720 → "₹2,54,720.00", 12345678.9 → "₹1,23,45,678.90".
func INR(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "0" && frac == "00" {
		sign = ""
	}
	return sign + rupee + groupIndian(intPart) + "." + frac
}

// groupIndian agrupa los últimos 3 dígitos y luego de a 2 (lakh/crore).
// Ej: "12345678" → "1,23,45,678".
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head, tail := digits[:n-3], digits[n-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// Now hora local truncada a segundos (la resolución que se persiste).
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// DateTime formatea t como dd-MM-yyyy HH:mm:ss.
func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime interpreta dd-MM-yyyy HH:mm:ss en hora local.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, time.Local)
}

// NewBookingID genera un ID corto tipo "BK-A1B2C3D4" a partir de un UUID v4.
func NewBookingID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK-" + hex[:8]
}

// Divider repite c n veces.
func Divider(c rune, n int) string {
	return strings.Repeat(string(c), n)
}

// Center centra text en width columnas (en runas, por el símbolo ₹).
func Center(text string, width int) string {
	l := utf8.RuneCountInString(text)
	if l >= width {
		return text
	}
	pad := (width - l) / 2
	return strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-l-pad)
}
