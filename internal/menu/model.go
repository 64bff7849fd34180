package menu

// Item is one dish candidate extracted from OCR text.
// IDs are ordinal within a single extraction; nothing is persisted.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// EnrichedItem is an Item with its generated (or placeholder) image.
type EnrichedItem struct {
	Item
	ImageURL string `json:"imageUrl"`
}

// Result is the full response payload for one processing run.
type Result struct {
	MenuItems     []EnrichedItem `json:"menuItems"`
	OriginalImage string         `json:"originalImage"`
	ExtractedText string         `json:"extractedText"`
}
