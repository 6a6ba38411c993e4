package entity

import "time"

// Atividade é um registro da trilha de auditoria. Append-only: nunca é
// atualizado nem removido. UsuarioID é uma referência fraca a Usuario
// (declarada, não imposta pelo armazenamento).
type Atividade struct {
	ID        string
	UsuarioID string
	Acao      string // descrição legível, ex.: "Funcionário Ana cadastrado."
	DataHora  time.Time
}
