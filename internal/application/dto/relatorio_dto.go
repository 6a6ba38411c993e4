package dto

// RelatorioResponse totais do relatório: contagem integral das duas tabelas,
// recalculada a cada chamada.
type RelatorioResponse struct {
	TotalClientes int64 `json:"total_clientes"`
	TotalProdutos int64 `json:"total_produtos"`
}
