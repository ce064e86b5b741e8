package domain

// FAQItem is a static help-center entry served by the support FAQ endpoint.
type FAQItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}
