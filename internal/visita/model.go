package visita

// Visita é um registro de prospecção em campo, independente de clientes e
// vendas.
type Visita struct {
	ID                string `json:"id"`
	Data              string `json:"data"` // yyyy-MM-dd
	Nome              string `json:"nome"`
	Regiao            string `json:"regiao"`
	QtdViveiros       int    `json:"qtdViveiros"`
	ViveirosComLarva  int    `json:"viveirosComLarva"`
	Area              string `json:"area"`
	QuantidadePovoada string `json:"quantidadePovoada"`
	Densidade         string `json:"densidade"`
	Observacoes       string `json:"observacoes,omitempty"`
}
