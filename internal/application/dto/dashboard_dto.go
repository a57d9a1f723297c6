package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen de ventas para el dashboard de administración.
type DashboardResponse struct {
	TotalVentas    decimal.Decimal  `json:"totalVentas"`
	LibrosVendidos map[string]int64 `json:"librosVendidos"`
}
