package domain

// Client is a registry entry used only for display enrichment. It is not
// joined with transactions.
type Client struct {
	Razao     string `json:"razao"`
	Descricao string `json:"descricao"`
	Cnpj      string `json:"cnpj"`
}
