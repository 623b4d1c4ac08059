package domain

// ClientRanking is one row of the ranking-by-client view.
type ClientRanking struct {
	Client       string  `json:"client"`
	ClientKey    string  `json:"cnpj"`
	InvoiceCount int     `json:"invoiceCount"`
	TotalValue   float64 `json:"totalValue"`
	AvgValue     float64 `json:"avgValue"`
}

// YearBucket holds the records of one year in insertion order.
type YearBucket[R Record] struct {
	Year    int `json:"year"`
	Records []R `json:"records"`
}

// MonthlyPoint is one (year, month) bucket of the trend series.
type MonthlyPoint struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// CategoryRollup summarizes one value of a categorical dimension.
type CategoryRollup struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Quantity float64 `json:"quantity,omitempty"`
	Value    float64 `json:"value"`
	Percent  float64 `json:"percent"`
}

// DirectSplit compares direct sales with brokered ones over active records.
type DirectSplit struct {
	Total            int     `json:"total"`
	TotalValue       float64 `json:"totalValue"`
	DirectCount      int     `json:"count"`
	DirectValue      float64 `json:"value"`
	BrokeredCount    int     `json:"brokeredCount"`
	BrokeredValue    float64 `json:"brokeredValue"`
	PercentCount     float64 `json:"percentCount"`
	PercentValue     float64 `json:"percent"`
	DirectAvgTicket  float64 `json:"directAvgTicket"`
	OverallAvgTicket float64 `json:"overallAvgTicket"`
}

// DashboardStats is the common summary block of every dataset.
type DashboardStats struct {
	TotalCount     int              `json:"totalCount"`
	TotalValue     float64          `json:"totalValue"`
	CancelledCount int              `json:"cancelledCount"`
	CountByYear    map[int]int      `json:"countByYear"`
	ValueByYear    map[int]float64  `json:"valueByYear"`
	ByCompany      []CategoryRollup `json:"byEmpresa"`
	MonthlyTrend   []MonthlyPoint   `json:"monthlyTrend"`
}

// InvoiceStats extends DashboardStats with tax totals.
type InvoiceStats struct {
	DashboardStats
	TotalISS   float64          `json:"totalISS"`
	ByActivity []CategoryRollup `json:"byAtividade"`
}

// ContractStats extends DashboardStats with area and broker figures.
type ContractStats struct {
	DashboardStats
	TotalArea     float64          `json:"totalArea"`
	AvgPricePerM2 float64          `json:"avgPricePerM2"`
	Direct        DirectSplit      `json:"direct"`
	ByProject     []CategoryRollup `json:"byEmpreendimento"`
	ByBroker      []CategoryRollup `json:"byBroker"`
}

// SaleStats extends DashboardStats with product figures.
type SaleStats struct {
	DashboardStats
	TotalQuantity float64          `json:"totalQuantity"`
	ByProduct     []CategoryRollup `json:"byProduct"`
	ByCategory    []CategoryRollup `json:"byCategory"`
	Direct        DirectSplit      `json:"direct"`
}

// LifecycleStatus classifies a client in one year.
type LifecycleStatus string

const (
	StatusNovo      LifecycleStatus = "novo"
	StatusAtivo     LifecycleStatus = "ativo"
	StatusReativado LifecycleStatus = "reativado"
	StatusInativo   LifecycleStatus = "inativo"
)

// ClientLifecycleRow is the per-year activity classification of one client.
type ClientLifecycleRow struct {
	ClientKey  string                  `json:"clientCnpj"`
	ClientName string                  `json:"clientName"`
	FirstYear  int                     `json:"firstYear"`
	LastYear   int                     `json:"lastYear"`
	Statuses   map[int]LifecycleStatus `json:"statuses"`
	TotalValue map[int]float64         `json:"totalValue"`
	Count      map[int]int             `json:"salesCount"`
}

// LifecycleSummary counts statuses for a reference year.
type LifecycleSummary struct {
	Year      int `json:"year"`
	Novo      int `json:"novo"`
	Ativo     int `json:"ativo"`
	Reativado int `json:"reativado"`
	Inativo   int `json:"inativo"`
}

// CohortSection lists the records of clients active in YearA that did not
// come back in YearB.
type CohortSection[R Record] struct {
	YearA       int `json:"yearA"`
	YearB       int `json:"yearB"`
	ClientCount int `json:"clientCount"`
	Records     []R `json:"records"`
}

// ClientEvolution is the per-year client movement.
type ClientEvolution struct {
	Year  int `json:"year"`
	Total int `json:"total"`
	New   int `json:"new"`
	Lost  int `json:"lost"`
}

// RevenueHighlights holds the headline numbers of the revenue view.
type RevenueHighlights struct {
	TotalValue     float64       `json:"totalValue"`
	AvgPerMonth    float64       `json:"avgPerMonth"`
	BestMonth      *MonthlyPoint `json:"bestMonth,omitempty"`
	GrowthPercent  *float64      `json:"growthPercent,omitempty"`
	GrowthFromYear int           `json:"growthFromYear,omitempty"`
	GrowthToYear   int           `json:"growthToYear,omitempty"`
}
