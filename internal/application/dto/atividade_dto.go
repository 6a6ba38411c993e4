package dto

import "time"

// AtividadeResponse saída de um registro da trilha de atividades.
type AtividadeResponse struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario_id"`
	Acao      string    `json:"acao"`
	DataHora  time.Time `json:"data_hora"`
}
