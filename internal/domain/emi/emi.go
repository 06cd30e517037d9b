// Package emi calcula cuotas mensuales (EMI) con el método de saldo decreciente:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// donde P es el principal, r la tasa mensual (anual / 12 / 100) y n el plazo en meses.
package emi

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	monthsPercent = decimal.NewFromInt(1200) // 12 meses * 100
	halfPaisa     = decimal.RequireFromString("0.005")
)

// CalculateEMI devuelve la cuota mensual. Cero si principal <= 0 o tenureMonths <= 0;
// principal/tenureMonths si la tasa es <= 0 (préstamo sin interés).
func CalculateEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) decimal.Decimal {
	if !principal.IsPositive() || tenureMonths <= 0 {
		return decimal.Zero
	}
	if !annualRatePercent.IsPositive() {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths)))
	}

	// (1+r)^n en float64: decimal no tiene potencia real barata y la precisión
	// de float64 sobra para montos en rupias.
	r := annualRatePercent.InexactFloat64() / 12 / 100
	pow := math.Pow(1+r, float64(tenureMonths))
	return decimal.NewFromFloat(principal.InexactFloat64() * r * pow / (pow - 1))
}

// TotalPayable = emi * tenureMonths.
func TotalPayable(emi decimal.Decimal, tenureMonths int) decimal.Decimal {
	return emi.Mul(decimal.NewFromInt(int64(tenureMonths)))
}

// TotalInterest = TotalPayable - principal.
func TotalInterest(emi decimal.Decimal, tenureMonths int, principal decimal.Decimal) decimal.Decimal {
	return TotalPayable(emi, tenureMonths).Sub(principal)
}

// Installment una fila del cuadro de amortización.
type Installment struct {
	Month     int
	EMI       decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule genera el cuadro mes a mes. El saldo nunca baja de cero y el residuo
// por redondeo (< medio paisa) se absorbe, de modo que el último saldo es 0.
func Schedule(principal, annualRatePercent decimal.Decimal, tenureMonths int) []Installment {
	if !principal.IsPositive() || tenureMonths <= 0 {
		return nil
	}
	emi := CalculateEMI(principal, annualRatePercent, tenureMonths)
	monthlyRate := decimal.Zero
	if annualRatePercent.IsPositive() {
		monthlyRate = annualRatePercent.Div(monthsPercent)
	}

	rows := make([]Installment, 0, tenureMonths)
	balance := principal
	for m := 1; m <= tenureMonths; m++ {
		interest := balance.Mul(monthlyRate).Round(8)
		principalPart := emi.Sub(interest)
		balance = balance.Sub(principalPart)
		if balance.LessThan(halfPaisa) {
			balance = decimal.Zero
		}
		rows = append(rows, Installment{
			Month:     m,
			EMI:       emi,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows
}

// AmortisationTable renderiza Schedule como texto tabular.
func AmortisationTable(principal, annualRatePercent decimal.Decimal, tenureMonths int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-6s %-12s %-12s %-12s %-14s\n", "Month", "EMI (₹)", "Principal", "Interest", "Balance (₹)")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	for _, row := range Schedule(principal, annualRatePercent, tenureMonths) {
		fmt.Fprintf(&sb, "%-6d %-12s %-12s %-12s %-14s\n",
			row.Month,
			row.EMI.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Balance.StringFixed(2),
		)
	}
	return sb.String()
}

// Quote resumen para un simulador de financiación: préstamo (nunca negativo),
// cuota, total a pagar, intereses y desembolso total incluyendo la entrada.
type Quote struct {
	LoanAmount    decimal.Decimal
	EMI           decimal.Decimal
	TotalPayable  decimal.Decimal
	TotalInterest decimal.Decimal
	TotalOutlay   decimal.Decimal
}

// NewQuote calcula un Quote a partir del precio on-road y la entrada.
func NewQuote(onRoadPrice, downPayment, annualRatePercent decimal.Decimal, tenureMonths int) Quote {
	loan := decimal.Max(decimal.Zero, onRoadPrice.Sub(downPayment))
	emi := CalculateEMI(loan, annualRatePercent, tenureMonths)
	total := TotalPayable(emi, tenureMonths)
	return Quote{
		LoanAmount:    loan,
		EMI:           emi,
		TotalPayable:  total,
		TotalInterest: TotalInterest(emi, tenureMonths, loan),
		TotalOutlay:   downPayment.Add(total),
	}
}
