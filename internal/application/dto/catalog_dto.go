package dto

// CatalogValueRequest is the body of POST /api/catalogs/:kind.
type CatalogValueRequest struct {
	Value string `json:"value" validate:"max=100"`
}

// CatalogResponse lists the values of one vocabulary (categories, sizes, colors, others).
type CatalogResponse struct {
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
}
