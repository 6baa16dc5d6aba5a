// Package posvenda classifica cada venda não arquivada para o acompanhamento
// de contato pós-venda.
package posvenda

import (
	"sort"
	"strings"
	"time"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/mascaras"
	"github.com/controlarva/api-gestao/internal/venda"
)

// Status do card de acompanhamento. Os valores seguem o snapshot original.
type Status string

const (
	StatusEmDia    Status = "safe"
	StatusAdiado   Status = "waiting"
	StatusContatar Status = "critical"
)

// Item é uma venda anotada com o resultado da classificação.
type Item struct {
	venda.Venda
	DiasDesdeVenda int    `json:"diasDesdeVenda"`
	Status         Status `json:"status"`
	LinkWhatsApp   string `json:"linkWhatsapp"`
}

// Classificar deriva o status de uma venda a partir da data da venda, do dia
// corrente, do intervalo configurado e do adiamento opcional. Devolve também
// a contagem de dias decorridos.
//
// Um adiamento até a data de hoje não conta como ativo: o status cai para
// Contatar.
func Classificar(dataVenda, hoje time.Time, intervalo int, adiadoAte *time.Time) (Status, int) {
	dias := datas.DiasEntre(hoje, dataVenda)
	expirada := dias >= intervalo

	adiamentoAtivo := adiadoAte != nil && datas.Truncar(*adiadoAte).After(datas.Truncar(hoje))

	switch {
	case !expirada:
		return StatusEmDia, dias
	case adiamentoAtivo:
		return StatusAdiado, dias
	default:
		return StatusContatar, dias
	}
}

// Processar monta a lista do acompanhamento: descarta vendas arquivadas,
// classifica as demais, aplica busca por nome de cliente e filtro de status e
// ordena da venda mais recente para a mais antiga (dias decorridos
// crescentes, ordenação estável).
func Processar(vendas []venda.Venda, hoje time.Time, intervalo int, busca string, filtro Status) []Item {
	termo := strings.ToLower(strings.TrimSpace(busca))
	itens := make([]Item, 0, len(vendas))

	for _, v := range vendas {
		if v.RemovidoDoPosVenda {
			continue
		}
		dataVenda, err := datas.Parse(v.Data)
		if err != nil {
			continue
		}
		var adiadoAte *time.Time
		if v.AdiadoAte != "" {
			if d, err := datas.Parse(v.AdiadoAte); err == nil {
				adiadoAte = &d
			}
		}

		status, dias := Classificar(dataVenda, hoje, intervalo, adiadoAte)

		if termo != "" && !strings.Contains(strings.ToLower(v.NomeCliente), termo) {
			continue
		}
		if filtro != "" && status != filtro {
			continue
		}

		itens = append(itens, Item{
			Venda:          v,
			DiasDesdeVenda: dias,
			Status:         status,
			LinkWhatsApp:   LinkWhatsApp(v.Telefone),
		})
	}

	sort.SliceStable(itens, func(i, j int) bool {
		return itens[i].DiasDesdeVenda < itens[j].DiasDesdeVenda
	})
	return itens
}

// LinkWhatsApp monta o deep link de mensagem a partir dos dígitos do
// telefone. Sem confirmação de entrega: o link apenas abre a conversa.
func LinkWhatsApp(telefone string) string {
	return "https://wa.me/" + mascaras.SomenteDigitos(telefone)
}
