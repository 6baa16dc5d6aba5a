package mascaras

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatarQuantidade(t *testing.T) {
	assert.Equal(t, "0", FormatarQuantidade(0))
	assert.Equal(t, "999", FormatarQuantidade(999))
	assert.Equal(t, "1.000", FormatarQuantidade(1000))
	assert.Equal(t, "1.234.567", FormatarQuantidade(1234567))
	assert.Equal(t, "0", FormatarQuantidade(-5), "negativo vira zero")
}

func TestParseQuantidadeRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 999, 1000, 85000, 1234567890} {
		assert.Equal(t, v, ParseQuantidade(FormatarQuantidade(v)))
	}
	assert.EqualValues(t, 0, ParseQuantidade(""))
	assert.EqualValues(t, 0, ParseQuantidade("abc"))
	assert.EqualValues(t, 1500, ParseQuantidade("1.500 milheiros"))
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "0,00", FormatarMoeda(decimal.Zero))
	assert.Equal(t, "0,05", FormatarMoeda(decimal.RequireFromString("0.05")))
	assert.Equal(t, "1.250,50", FormatarMoeda(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "12,00", FormatarMoeda(decimal.NewFromInt(12)))
	assert.Equal(t, "1.000.000,99", FormatarMoeda(decimal.RequireFromString("1000000.99")))
}

func TestParseMoedaRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "0.05", "12.00", "1250.50", "98765.43"} {
		v := decimal.RequireFromString(s)
		assert.True(t, v.Equal(ParseMoeda(FormatarMoeda(v))), "ida e volta de %s", s)
	}
	assert.True(t, ParseMoeda("R$ 1.250,50").Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, ParseMoeda("").Equal(decimal.Zero))
}

func TestFormatarDocumento(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		{"", ""},
		{"123", "123"},
		{"1234", "123.4"},
		{"12345678901", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"12345678000195", "12.345.678/0001-95"},
		{"12.345.678/0001-95", "12.345.678/0001-95"},
		// excedente é descartado
		{"123456780001959999", "12.345.678/0001-95"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, FormatarDocumento(c.entrada), "entrada %q", c.entrada)
	}
}

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "5584999887766", SomenteDigitos("+55 (84) 99988-7766"))
	assert.Equal(t, "", SomenteDigitos("sem número"))
}
