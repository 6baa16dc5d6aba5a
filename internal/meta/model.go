package meta

import "github.com/shopspring/decimal"

// Meta é um objetivo de volume e receita com prazo. Várias metas podem
// coexistir; apenas a criada por último é exibida no painel, as demais viram
// histórico inerte.
type Meta struct {
	ID          string          `json:"id"`
	MetaLarvas  int64           `json:"metaLarvas"` // em milheiros
	MetaReceita decimal.Decimal `json:"metaReceita"`
	Prazo       string          `json:"prazo"`    // yyyy-MM-dd
	CriadoEm    int64           `json:"criadoEm"` // unix millis
}
