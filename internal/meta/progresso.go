package meta

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

// PontoSerie é um ponto da evolução acumulada de larvas desde a criação da
// meta.
type PontoSerie struct {
	Data      string `json:"data"` // yyyy-MM-dd
	Acumulado int64  `json:"acumulado"`
}

// Progresso é o estado derivado da meta ativa, recalculado a cada consulta a
// partir das vendas vivas. Nada aqui é persistido.
type Progresso struct {
	Meta              Meta            `json:"meta"`
	LarvasAcumuladas  int64           `json:"larvasAcumuladas"`
	ReceitaAcumulada  decimal.Decimal `json:"receitaAcumulada"`
	PercentualLarvas  float64         `json:"percentualLarvas"`
	PercentualReceita float64         `json:"percentualReceita"`
	Atingida          bool            `json:"atingida"`
	Expirada          bool            `json:"expirada"`
	Serie             []PontoSerie    `json:"serie"`
}

// MetaAtiva seleciona a meta com o maior CriadoEm; nil quando não há metas.
// A seleção é uma redução pura sobre a lista, nunca estado mutável.
func MetaAtiva(metas []Meta) *Meta {
	var ativa *Meta
	for i := range metas {
		if ativa == nil || metas[i].CriadoEm > ativa.CriadoEm {
			ativa = &metas[i]
		}
	}
	if ativa == nil {
		return nil
	}
	copia := *ativa
	return &copia
}

// CalcularProgresso computa a evolução acumulada contra a meta. Contam as
// vendas datadas no dia da criação da meta ou depois (comparação só de
// dia-calendário); a série parte de um ponto zero ancorado no dia de criação.
func CalcularProgresso(m Meta, vendas []venda.Venda, hoje time.Time) Progresso {
	inicio := datas.Truncar(time.UnixMilli(m.CriadoEm).UTC())

	qualificadas := make([]venda.Venda, 0, len(vendas))
	for _, v := range vendas {
		d, err := datas.Parse(v.Data)
		if err != nil {
			continue
		}
		if !d.Before(inicio) {
			qualificadas = append(qualificadas, v)
		}
	}
	sort.SliceStable(qualificadas, func(i, j int) bool {
		return qualificadas[i].Data < qualificadas[j].Data
	})

	serie := []PontoSerie{{Data: datas.Formatar(inicio), Acumulado: 0}}
	var larvas int64
	receita := decimal.Zero
	for _, v := range qualificadas {
		larvas += v.QuantidadeLarvas
		receita = receita.Add(v.ValorTotal)
		serie = append(serie, PontoSerie{Data: v.Data, Acumulado: larvas})
	}

	p := Progresso{
		Meta:              m,
		LarvasAcumuladas:  larvas,
		ReceitaAcumulada:  receita,
		PercentualLarvas:  percentual(decimal.NewFromInt(larvas), decimal.NewFromInt(m.MetaLarvas)),
		PercentualReceita: percentual(receita, m.MetaReceita),
		Serie:             serie,
	}
	p.Atingida = p.PercentualLarvas >= 100 && p.PercentualReceita >= 100

	if prazo, err := datas.Parse(m.Prazo); err == nil {
		p.Expirada = datas.Truncar(hoje).After(prazo) && !p.Atingida
	}
	return p
}

// percentual devolve min(100, 100·valor/alvo); alvo zero vale 0, nunca uma
// divisão por zero.
func percentual(valor, alvo decimal.Decimal) float64 {
	if alvo.IsZero() {
		return 0
	}
	pct := valor.Div(alvo).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
