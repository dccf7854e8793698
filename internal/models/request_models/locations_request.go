package request_models

type GenerateLocationsRequest struct {
	Query string `json:"query"`
}

type SessionSearchRequest struct {
	Query  string `json:"query"`
	Filter string `json:"filter"`
}
