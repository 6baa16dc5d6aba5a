// Package datas concentra o tratamento de datas-calendário (sem horário)
// usado em vendas, metas e relatórios.
package datas

import "time"

const (
	// FormatoISO é o formato persistido nos snapshots (yyyy-MM-dd).
	FormatoISO = "2006-01-02"
	// FormatoBR é o formato de exibição (dd/MM/yyyy).
	FormatoBR = "02/01/2006"
)

// Parse interpreta uma data yyyy-MM-dd como meia-noite UTC.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(FormatoISO, s, time.UTC)
}

// Truncar reduz um instante à meia-noite UTC do mesmo dia-calendário.
func Truncar(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Hoje devolve o dia-calendário corrente, já truncado.
func Hoje() time.Time {
	return Truncar(time.Now())
}

// DiasEntre devolve a diferença inteira de dias entre a e b (a - b),
// truncando ambos antes de subtrair.
func DiasEntre(a, b time.Time) int {
	return int(Truncar(a).Sub(Truncar(b)).Hours() / 24)
}

// Formatar serializa no formato persistido.
func Formatar(t time.Time) string {
	return t.Format(FormatoISO)
}

// FormatarBR serializa no formato de exibição brasileiro.
func FormatarBR(t time.Time) string {
	return t.Format(FormatoBR)
}
