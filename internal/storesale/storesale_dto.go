package storesale

type CreateStoreSaleRequest struct {
	StoreID   string  `json:"storeId" binding:"required"`
	CashierID string  `json:"cashierId" binding:"required"`
	Sales     float64 `json:"sales"`
	Remit     float64 `json:"remit"`
	Date      string  `json:"date" binding:"required"`
}

type UpdateStoreSaleRequest struct {
	Sales float64 `json:"sales"`
	Remit float64 `json:"remit"`
	Date  string  `json:"date" binding:"required"`
}

type StoreSaleResponse struct {
	ID          string  `json:"id"`
	StoreID     string  `json:"storeId"`
	StoreName   string  `json:"storeName"`
	CashierID   string  `json:"cashierId"`
	CashierName string  `json:"cashierName"`
	Sales       float64 `json:"sales"`
	Remit       float64 `json:"remit"`
	Date        string  `json:"date"`
}

func mapToResponse(s StoreSale) StoreSaleResponse {
	return StoreSaleResponse{
		ID:          s.ID,
		StoreID:     s.StoreID,
		StoreName:   s.StoreName,
		CashierID:   s.CashierID,
		CashierName: s.CashierName,
		Sales:       s.Sales,
		Remit:       s.Remit,
		Date:        s.Date,
	}
}

func mapToListResponse(sales []StoreSale) []StoreSaleResponse {
	resp := make([]StoreSaleResponse, len(sales))
	for i, s := range sales {
		resp[i] = mapToResponse(s)
	}
	return resp
}
