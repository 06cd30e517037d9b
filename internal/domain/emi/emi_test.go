package emi_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jawa-showroom/internal/domain/emi"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateEMI_VectorConocido(t *testing.T) {
	// 1 lakh al 9% anual en 12 meses.
	got := emi.CalculateEMI(d("100000"), d("9.0"), 12)
	assert.InDelta(t, 8745.15, got.InexactFloat64(), 0.01)
}

func TestCalculateEMI_PlazoLargo(t *testing.T) {
	got := emi.CalculateEMI(d("500000"), d("10.5"), 360)
	assert.InDelta(t, 4573.70, got.InexactFloat64(), 0.01)
}

func TestCalculateEMI_SinInteresEsDivisionSimple(t *testing.T) {
	for _, c := range []struct {
		p string
		n int
	}{{"100000", 12}, {"288720", 7}, {"1", 3}, {"99999.99", 36}} {
		P := d(c.p)
		want := P.Div(decimal.NewFromInt(int64(c.n)))
		assert.True(t, want.Equal(emi.CalculateEMI(P, decimal.Zero, c.n)), c.p)
		assert.True(t, want.Equal(emi.CalculateEMI(P, d("-1"), c.n)), "tasa negativa = sin interés")
	}
}

func TestCalculateEMI_EntradasNoPositivas(t *testing.T) {
	assert.True(t, emi.CalculateEMI(decimal.Zero, d("9"), 12).IsZero())
	assert.True(t, emi.CalculateEMI(d("-5"), d("9"), 12).IsZero())
	assert.True(t, emi.CalculateEMI(d("100000"), d("9"), 0).IsZero())
	assert.True(t, emi.CalculateEMI(d("100000"), d("9"), -3).IsZero())
}

func TestTotales(t *testing.T) {
	e := d("8745.15")
	assert.Equal(t, "104941.8", emi.TotalPayable(e, 12).String())
	assert.Equal(t, "4941.8", emi.TotalInterest(e, 12, d("100000")).String())
}

func TestSchedule_SaldoFinalCero(t *testing.T) {
	cases := []struct {
		p    string
		rate string
		n    int
	}{
		{"100000", "9", 12},
		{"230976", "9", 36},
		{"500000", "10.5", 360},
		{"100000", "0", 7},
		{"1", "36", 6},
	}
	for _, c := range cases {
		rows := emi.Schedule(d(c.p), d(c.rate), c.n)
		require.Len(t, rows, c.n)
		last := rows[len(rows)-1]
		assert.True(t, last.Balance.IsZero(), "%s@%s/%d → %s", c.p, c.rate, c.n, last.Balance)
		for _, r := range rows {
			assert.False(t, r.Balance.IsNegative())
		}
	}
}

func TestSchedule_PrimeraFila(t *testing.T) {
	rows := emi.Schedule(d("100000"), d("9"), 12)
	first := rows[0]

	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "750", first.Interest.String(), "100000 * 0.0075")
	assert.True(t, first.EMI.Sub(first.Interest).Equal(first.Principal))
	assert.True(t, d("100000").Sub(first.Principal).Equal(first.Balance))
}

func TestSchedule_Vacio(t *testing.T) {
	assert.Empty(t, emi.Schedule(decimal.Zero, d("9"), 12))
	assert.Empty(t, emi.Schedule(d("1000"), d("9"), 0))
}

func TestAmortisationTable(t *testing.T) {
	table := emi.AmortisationTable(d("100000"), d("9"), 12)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")

	require.Len(t, lines, 14, "cabecera + separador + 12 meses")
	assert.True(t, strings.HasPrefix(lines[0], "Month"))
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1      8745.15"))
	assert.Contains(t, lines[13], "0.00")
	assert.True(t, strings.HasPrefix(lines[13], "12 "))
}

func TestNewQuote(t *testing.T) {
	q := emi.NewQuote(d("288720"), d("57744"), d("9"), 36)

	assert.Equal(t, "230976", q.LoanAmount.String())
	assert.True(t, q.EMI.Equal(emi.CalculateEMI(d("230976"), d("9"), 36)))
	assert.True(t, q.TotalOutlay.Equal(d("57744").Add(q.TotalPayable)))
	assert.InDelta(t, 7344.98, q.EMI.InexactFloat64(), 0.01)
}

func TestNewQuote_EntradaMayorQuePrecio(t *testing.T) {
	q := emi.NewQuote(d("100000"), d("150000"), d("9"), 12)

	assert.True(t, q.LoanAmount.IsZero())
	assert.True(t, q.EMI.IsZero())
	assert.True(t, q.TotalOutlay.Equal(d("150000")))
}
