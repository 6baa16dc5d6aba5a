// Package mascaras reúne as transformações entre valores brutos e texto de
// exibição: quantidades em milheiros, moeda em R$ e CPF/CNPJ.
package mascaras

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SomenteDigitos remove tudo que não for dígito decimal.
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// agrupar insere pontos de milhar a cada três dígitos, da direita para a
// esquerda (1234567 -> 1.234.567).
func agrupar(digitos string) string {
	n := len(digitos)
	if n <= 3 {
		return digitos
	}
	var b strings.Builder
	resto := n % 3
	if resto > 0 {
		b.WriteString(digitos[:resto])
	}
	for i := resto; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digitos[i : i+3])
	}
	return b.String()
}

// FormatarQuantidade exibe um inteiro não negativo com pontos de milhar.
func FormatarQuantidade(v int64) string {
	if v < 0 {
		v = 0
	}
	return agrupar(strconv.FormatInt(v, 10))
}

// ParseQuantidade recupera o inteiro a partir do texto mascarado. Texto sem
// dígitos vale zero.
func ParseQuantidade(s string) int64 {
	d := SomenteDigitos(s)
	if d == "" {
		return 0
	}
	v, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatarMoeda exibe um valor monetário no padrão pt-BR (1.250,50). O valor
// é levado a centavos antes da montagem do texto para não herdar artefatos de
// arredondamento.
func FormatarMoeda(v decimal.Decimal) string {
	centavos := v.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if centavos < 0 {
		centavos = 0
	}
	d := strconv.FormatInt(centavos, 10)
	for len(d) < 3 {
		d = "0" + d
	}
	inteiro, fracao := d[:len(d)-2], d[len(d)-2:]
	return agrupar(inteiro) + "," + fracao
}

// ParseMoeda recupera o valor monetário do texto mascarado: descarta tudo que
// não for dígito e divide por 100.
func ParseMoeda(s string) decimal.Decimal {
	d := SomenteDigitos(s)
	if d == "" {
		return decimal.Zero
	}
	centavos, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.New(centavos, -2)
}

// FormatarDocumento aplica a máscara de CPF (até 11 dígitos) ou de CNPJ,
// alternando o padrão conforme a quantidade de dígitos. Entradas parciais
// são mascaradas progressivamente, como num campo de formulário.
func FormatarDocumento(valor string) string {
	d := SomenteDigitos(valor)
	var b strings.Builder
	if len(d) <= 11 {
		for i := 0; i < len(d); i++ {
			switch i {
			case 3, 6:
				b.WriteByte('.')
			case 9:
				b.WriteByte('-')
			}
			b.WriteByte(d[i])
		}
		return b.String()
	}
	if len(d) > 14 {
		d = d[:14]
	}
	for i := 0; i < len(d); i++ {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}
