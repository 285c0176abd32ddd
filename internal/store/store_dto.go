package store

type CreateStoreRequest struct {
	StoreName string `json:"storeName" binding:"required"`
	Address   string `json:"address"`
	Landline  string `json:"landline"`
}

type UpdateStoreRequest struct {
	StoreName string `json:"storeName" binding:"required"`
	Address   string `json:"address"`
	Landline  string `json:"landline"`
}

// ReplaceStoreRecord is one row of a whole-list replacement; rows without an
// id are new.
type ReplaceStoreRecord struct {
	ID        string `json:"id"`
	StoreName string `json:"storeName" binding:"required"`
	Address   string `json:"address"`
	Landline  string `json:"landline"`
}

type ReplaceAllRequest struct {
	Stores []ReplaceStoreRecord `json:"stores" binding:"required"`
}

type StoreResponse struct {
	ID        string `json:"id"`
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
	Landline  string `json:"landline"`
}

func mapToResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		StoreName: s.StoreName,
		Address:   s.Address,
		Landline:  s.Landline,
	}
}

func mapToListResponse(stores []Store) []StoreResponse {
	resp := make([]StoreResponse, len(stores))
	for i, s := range stores {
		resp[i] = mapToResponse(s)
	}
	return resp
}
