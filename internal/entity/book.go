package entity

// Book is one catalog entry. ISBN is the unique key; Reviews maps a
// username to that user's review text and is omitted when empty so the
// persisted document keeps its compact original shape.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews,omitempty"`
}
