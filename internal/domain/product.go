package domain

// Product is an immutable catalog record supplied by the external catalog
// service. Stores copy it by value and never mutate it.
type Product struct {
	ID          int64
	Title       string
	Price       Money
	Description string
	Category    string
	Image       string
	Rating      Rating
}

type Rating struct {
	Rate  float64
	Count int
}
