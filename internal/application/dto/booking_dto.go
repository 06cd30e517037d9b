package dto

import "github.com/shopspring/decimal"

// PaymentPlan forma de pago elegida al reservar. Con EMI en false el resto de
// campos se ignora.
type PaymentPlan struct {
	EMI          bool
	DownPayment  decimal.Decimal
	AnnualRate   decimal.Decimal // % anual, ej. 9.5
	TenureMonths int
}

// FullPayment pago de contado.
func FullPayment() PaymentPlan {
	return PaymentPlan{}
}

// EMIPlan financiación con entrada, tasa anual y plazo en meses.
func EMIPlan(downPayment, annualRate decimal.Decimal, tenureMonths int) PaymentPlan {
	return PaymentPlan{
		EMI:          true,
		DownPayment:  downPayment,
		AnnualRate:   annualRate,
		TenureMonths: tenureMonths,
	}
}
