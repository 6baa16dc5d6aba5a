package cliente

// Cliente representa um produtor cadastrado na carteira.
type Cliente struct {
	ID               string `json:"id"`
	Nome             string `json:"nome"`
	Documento        string `json:"documento"` // CPF ou CNPJ, já mascarado
	Endereco         string `json:"endereco"`
	Telefone         string `json:"telefone"`
	Email            string `json:"email"`
	QtdViveiros      int    `json:"qtdViveiros"`
	ViveirosComLarva int    `json:"viveirosComLarva"`
	Observacoes      string `json:"observacoes,omitempty"`
	CriadoEm         int64  `json:"criadoEm"` // unix millis
}
