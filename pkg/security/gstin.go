package security

import (
	"fmt"
	"strings"
)

// gstinCharset alfabeto base 36 del GSTIN; el índice es el valor del carácter.
const gstinCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const gstinLen = 15

// ValidateGSTIN valida longitud, alfabeto y carácter de control (posición 15)
// de un GSTIN. Acepta minúsculas y espacios alrededor.
func ValidateGSTIN(gstin string) error {
	g := strings.ToUpper(strings.TrimSpace(gstin))
	if len(g) != gstinLen {
		return fmt.Errorf("gstin: debe tener %d caracteres, se recibieron %d", gstinLen, len(g))
	}
	expected, err := ComputeGSTINCheckChar(g[:gstinLen-1])
	if err != nil {
		return err
	}
	if g[gstinLen-1] != expected {
		return fmt.Errorf("gstin: carácter de control inválido: esperado %c, recibido %c", expected, g[gstinLen-1])
	}
	return nil
}

// ComputeGSTINCheckChar calcula el carácter de control para los 14 primeros
// caracteres del GSTIN (factores alternos 1 y 2, módulo 36).
func ComputeGSTINCheckChar(base string) (byte, error) {
	b := strings.ToUpper(strings.TrimSpace(base))
	if len(b) < gstinLen-1 {
		return 0, fmt.Errorf("gstin: se requieren %d caracteres para calcular el control, se encontraron %d", gstinLen-1, len(b))
	}
	var sum int
	for i := 0; i < gstinLen-1; i++ {
		v := strings.IndexByte(gstinCharset, b[i])
		if v < 0 {
			return 0, fmt.Errorf("gstin: carácter %q no permitido en posición %d", b[i], i+1)
		}
		p := v * (i%2 + 1)
		sum += p/36 + p%36
	}
	return gstinCharset[(36-sum%36)%36], nil
}
