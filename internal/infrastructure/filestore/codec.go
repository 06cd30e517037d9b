package filestore

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/jawa-showroom/internal/domain/entity"
	"github.com/jhoicas/jawa-showroom/pkg/format"
)

const (
	delim         = "|"
	userFields    = 7
	bookingFields = 24
)

// Escapado de texto libre. "~" también se escapa para que la transformación sea
// reversible aunque el texto contenga literalmente "~PIPE~"; los archivos previos
// (sin ~TILDE~) se leen igual. strings.Replacer hace una sola pasada izquierda→derecha.
var (
	escaper = strings.NewReplacer(
		"~", "~TILDE~",
		"|", "~PIPE~",
		"\n", "~NL~",
		"\r", "~CR~",
	)
	unescaper = strings.NewReplacer(
		"~TILDE~", "~",
		"~PIPE~", "|",
		"~NL~", "\n",
		"~CR~", "\r",
	)
)

func escape(s string) string   { return escaper.Replace(s) }
func unescape(s string) string { return unescaper.Replace(s) }

// decodeLine acepta líneas UTF-8; las que no lo son se leen como Windows-1252
// (archivos escritos con el charset por defecto de la plataforma).
func decodeLine(raw string) string {
	if utf8.ValidString(raw) {
		return raw
	}
	out, _, err := transform.String(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return raw
	}
	return out
}

func join(fields ...string) string {
	for i, f := range fields {
		fields[i] = escape(f)
	}
	return strings.Join(fields, delim)
}

func split(line string) []string {
	parts := strings.Split(line, delim)
	for i, p := range parts {
		parts[i] = unescape(p)
	}
	return parts
}

// encodeUser: username|passwordHash|fullName|email|phone|address|createdAt
func encodeUser(u *entity.User) string {
	return join(
		u.Username,
		u.PasswordHash,
		u.FullName,
		u.Email,
		u.Phone,
		u.Address,
		timeField(u.CreatedAt),
	)
}

// decodeUser devuelve false si la línea no tiene los 7 campos.
func decodeUser(line string) (*entity.User, bool) {
	p := split(line)
	if len(p) < userFields {
		return nil, false
	}
	return &entity.User{
		Username:     p[0],
		PasswordHash: p[1],
		FullName:     p[2],
		Email:        p[3],
		Phone:        p[4],
		Address:      p[5],
		CreatedAt:    parseTime(p[6]),
	}, true
}

// encodeBooking escribe los 24 campos en orden fijo.
func encodeBooking(b *entity.Booking) string {
	emi := "N"
	if b.EMIChosen {
		emi = "Y"
	}
	return join(
		b.BookingID,
		b.Username,
		timeField(b.BookingDate),
		string(b.Status),
		b.BikeID,
		b.BikeModelName,
		b.BikeVariant,
		b.BikeColor,
		b.ExShowroomPrice.String(),
		b.GSTAmount.String(),
		b.RTOCharges.String(),
		b.InsurancePremium.String(),
		b.HandlingCharges.String(),
		b.TotalOnRoadPrice.String(),
		emi,
		b.DownPayment.String(),
		b.LoanAmount.String(),
		b.InterestRate.String(),
		strconv.Itoa(b.TenureMonths),
		b.EMIAmount.String(),
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.CustomerAddress,
	)
}

// decodeBooking devuelve false si la línea no tiene los 24 campos. Los numéricos
// ilegibles quedan en 0.
func decodeBooking(line string) (*entity.Booking, bool) {
	p := split(line)
	if len(p) < bookingFields {
		return nil, false
	}
	return &entity.Booking{
		BookingID:        p[0],
		Username:         p[1],
		BookingDate:      parseTime(p[2]),
		Status:           entity.BookingStatus(p[3]),
		BikeID:           p[4],
		BikeModelName:    p[5],
		BikeVariant:      p[6],
		BikeColor:        p[7],
		ExShowroomPrice:  parseDecimal(p[8]),
		GSTAmount:        parseDecimal(p[9]),
		RTOCharges:       parseDecimal(p[10]),
		InsurancePremium: parseDecimal(p[11]),
		HandlingCharges:  parseDecimal(p[12]),
		TotalOnRoadPrice: parseDecimal(p[13]),
		EMIChosen:        p[14] == "Y",
		DownPayment:      parseDecimal(p[15]),
		LoanAmount:       parseDecimal(p[16]),
		InterestRate:     parseDecimal(p[17]),
		TenureMonths:     parseInt(p[18]),
		EMIAmount:        parseDecimal(p[19]),
		CustomerName:     p[20],
		CustomerEmail:    p[21],
		CustomerPhone:    p[22],
		CustomerAddress:  p[23],
	}, true
}

func parseDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// "36.0" u otros formatos numéricos heredados
		return int(parseDecimal(s).IntPart())
	}
	return n
}

func timeField(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return format.DateTime(t)
}

func parseTime(s string) time.Time {
	t, err := format.ParseDateTime(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
