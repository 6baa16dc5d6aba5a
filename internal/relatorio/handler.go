package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/controlarva/api-gestao/internal/datas"
	"github.com/controlarva/api-gestao/internal/venda"
)

type Handler struct {
	Vendas *venda.Repository
	Log    *zap.Logger
}

func NewHandler(vendas *venda.Repository, log *zap.Logger) *Handler {
	return &Handler{Vendas: vendas, Log: log}
}

type respostaRelatorio struct {
	Inicio             string           `json:"inicio"`
	Fim                string           `json:"fim"`
	Resumo             Resumo           `json:"resumo"`
	SerieMensal        []PontoMensal    `json:"serieMensal"`
	Ranking            []PosicaoRanking `json:"ranking"`
	DadosInsuficientes bool             `json:"dadosInsuficientes"`
}

// periodo lê inicio/fim da query; sem parâmetros o padrão são os últimos 30
// dias, como na tela de relatórios.
func periodo(r *http.Request, hoje time.Time) (inicio, fim time.Time, ok bool) {
	inicio, fim = hoje.AddDate(0, 0, -30), hoje
	if s := r.URL.Query().Get("inicio"); s != "" {
		d, err := datas.Parse(s)
		if err != nil {
			return inicio, fim, false
		}
		inicio = d
	}
	if s := r.URL.Query().Get("fim"); s != "" {
		d, err := datas.Parse(s)
		if err != nil {
			return inicio, fim, false
		}
		fim = d
	}
	return inicio, fim, true
}

func (h *Handler) montar(inicio, fim time.Time) DadosRelatorio {
	filtradas := FiltrarPorPeriodo(h.Vendas.Todas(), inicio, fim)
	return DadosRelatorio{
		Inicio:  datas.Truncar(inicio),
		Fim:     datas.Truncar(fim),
		Resumo:  CalcularResumo(filtradas),
		Serie:   SerieMensal(filtradas, inicio, fim),
		Ranking: RankingClientes(filtradas),
		Vendas:  filtradas,
	}
}

// GET /relatorios?inicio=&fim=
func (h *Handler) ObterRelatorio(w http.ResponseWriter, r *http.Request) {
	inicio, fim, ok := periodo(r, datas.Hoje())
	if !ok {
		http.Error(w, "Período inválido", http.StatusBadRequest)
		return
	}

	d := h.montar(inicio, fim)
	json.NewEncoder(w).Encode(respostaRelatorio{
		Inicio:             datas.Formatar(d.Inicio),
		Fim:                datas.Formatar(d.Fim),
		Resumo:             d.Resumo,
		SerieMensal:        d.Serie,
		Ranking:            d.Ranking,
		DadosInsuficientes: len(d.Serie) < 2,
	})
}

// GET /relatorios/pdf?inicio=&fim=
//
// O documento é gerado inteiro em memória antes de qualquer escrita na
// resposta, para que uma falha no meio não entregue um PDF truncado.
func (h *Handler) ExportarPDF(w http.ResponseWriter, r *http.Request) {
	inicio, fim, ok := periodo(r, datas.Hoje())
	if !ok {
		http.Error(w, "Período inválido", http.StatusBadRequest)
		return
	}

	d := h.montar(inicio, fim)
	conteudo, err := GerarPDF(d)
	if err != nil {
		h.Log.Error("falha ao gerar relatório em PDF",
			zap.String("inicio", datas.Formatar(d.Inicio)),
			zap.String("fim", datas.Formatar(d.Fim)),
			zap.Error(err))
		http.Error(w, "Erro ao gerar o PDF. Verifique os dados e tente novamente.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+NomeArquivo(d.Inicio, d.Fim)+`"`)
	w.Write(conteudo)
}
