package domain

// MaxNewsItems caps how many headlines are kept from one listing.
const MaxNewsItems = 3

type NewsItem struct {
	Title string
	URL   string
}

type NewsResult struct {
	Outcome    Outcome
	StatusCode int
	Items      []NewsItem
}
