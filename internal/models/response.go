package models

// SuccessResponse is the fixed envelope every successful API response uses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope returned on any failure, including the
// empty-store 404 on the random endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

type Photographer struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Profile  string `json:"profile,omitempty"`
}

// RandomImageData is the payload of the random image endpoints.
type RandomImageData struct {
	ID           string       `json:"id"`
	ImageURL     string       `json:"imageUrl"`
	Caption      string       `json:"caption,omitempty"`
	Photographer Photographer `json:"photographer"`
	UnsplashLink string       `json:"unsplashLink,omitempty"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// StatsData is the payload of the stats endpoint.
type StatsData struct {
	TotalImages             int            `json:"totalImages"`
	WithLocation            int            `json:"withLocation"`
	WithCountry             int            `json:"withCountry"`
	LocationCoveragePercent float64        `json:"locationCoveragePercent"`
	TopCountries            []CountryCount `json:"topCountries"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
