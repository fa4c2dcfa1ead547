package confirmation

// SubmitRequest for POST /api/confirmacion. Acompanantes is a pointer so a
// missing field is distinguishable from a guest coming alone (0 is valid).
type SubmitRequest struct {
	Nombre       string `json:"nombre" validate:"required,notblank,max=200"`
	Acompanantes *int   `json:"acompanantes" validate:"required,gte=0"`
	Mensaje      string `json:"mensaje"`
	Telefono     string `json:"telefono" validate:"required,notblank,phone"`
}

// SubmitResponse for POST /api/confirmacion
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Totals aggregates headcount over all confirmations.
type Totals struct {
	TotalConfirmaciones int `json:"totalConfirmaciones"`
	TotalAcompanantes   int `json:"totalAcompanantes"`
	TotalPersonas       int `json:"totalPersonas"`
}

// ListResponse for GET /api/confirmaciones
type ListResponse struct {
	Confirmaciones []*Confirmation `json:"confirmaciones"`
	Estadisticas   Totals          `json:"estadisticas"`
}
