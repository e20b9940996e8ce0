package domain

// Category maps a navigation label to the keywords sent to the places provider.
type Category struct {
	Name     string
	Keywords string
}
