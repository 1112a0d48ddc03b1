package services

import (
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
	"nouhin-backend/utils"
)

// SalesRow is one aggregated group of the sales summary.
type SalesRow struct {
	CustomerName string  `json:"customerName"`
	TotalSales   float64 `json:"totalSales"`
}

// SalesSummary filters deliveries and rolls their line amounts up per
// resolved customer name (不明 for dangling references). Groups appear in
// first-seen order; the filtered detail rows are returned alongside for the
// combined summary+details response.
func (s *Service) SalesSummary(q filters.Query) ([]SalesRow, []models.Delivery, error) {
	var details []models.Delivery
	var rows []SalesRow
	var ferr error

	s.store.View(func(st *store.State) {
		details, ferr = filters.Deliveries(st.Deliveries, q)
		if ferr != nil {
			return
		}
		index := make(map[string]int)
		for _, d := range details {
			name := st.CustomerName(d.CustomerId)
			i, seen := index[name]
			if !seen {
				i = len(rows)
				index[name] = i
				rows = append(rows, SalesRow{CustomerName: name})
			}
			rows[i].TotalSales = utils.Round2(rows[i].TotalSales + d.TotalAmount())
		}
	})
	if ferr != nil {
		return nil, nil, ferr
	}
	if rows == nil {
		rows = []SalesRow{}
	}
	return rows, details, nil
}
