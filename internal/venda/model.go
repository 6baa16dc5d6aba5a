package venda

import "github.com/shopspring/decimal"

// FormaPagamento é o meio de pagamento aceito na venda.
type FormaPagamento string

const (
	Dinheiro FormaPagamento = "Dinheiro"
	PIX      FormaPagamento = "PIX"
	Cartao   FormaPagamento = "Cartão"
	Boleto   FormaPagamento = "Boleto"
)

func (f FormaPagamento) Valida() bool {
	switch f {
	case Dinheiro, PIX, Cartao, Boleto:
		return true
	}
	return false
}

// Venda registra a saída de larvas para um cliente. Nome e telefone são
// desnormalizados na criação e permanecem válidos mesmo que o cliente seja
// removido depois.
type Venda struct {
	ID               string          `json:"id"`
	ClienteID        string          `json:"clienteId"`
	NomeCliente      string          `json:"nomeCliente"`
	Telefone         string          `json:"telefone"`
	QuantidadeLarvas int64           `json:"quantidadeLarvas"` // em milheiros
	PrecoMilheiro    decimal.Decimal `json:"precoMilheiro"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	Data             string          `json:"data"` // yyyy-MM-dd
	FormaPagamento   FormaPagamento  `json:"formaPagamento"`
	ViveirosPovoados int             `json:"viveirosPovoados"`
	Observacoes      string          `json:"observacoes,omitempty"`
	AdiadoAte        string          `json:"adiadoAte,omitempty"` // yyyy-MM-dd
	// RemovidoDoPosVenda é monotônico: uma vez arquivada, a venda nunca
	// volta ao acompanhamento.
	RemovidoDoPosVenda bool `json:"removidoDoPosVenda,omitempty"`
}

// CalcularTotal mantém o invariante valorTotal = quantidade × preço.
func (v *Venda) CalcularTotal() {
	v.ValorTotal = v.PrecoMilheiro.Mul(decimal.NewFromInt(v.QuantidadeLarvas))
}
