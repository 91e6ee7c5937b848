package marketplace

// Product is one raw search result as returned by the marketplace
// search API. Metric fields are pointers: a nil field is an explicit
// missing value, distinct from zero.
type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Price        *float64 `json:"price"`
	Rating       *float64 `json:"rating"`
	Reviews      *float64 `json:"reviews"`
	DeliveryDays *float64 `json:"delivery_days"`
}

// SearchResponse is the search endpoint's envelope.
type SearchResponse struct {
	Success  bool      `json:"success"`
	Query    string    `json:"query"`
	Products []Product `json:"products"`
}
