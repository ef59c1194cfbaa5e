package domain

// Page represents one unit of content shown full-screen in the deck
type Page struct {
	ID    string
	Title string
	Body  string
}

// Direction is the side a page transition comes from
type Direction int

const (
	// Forward moves to the next page (right half of the screen)
	Forward Direction = iota
	// Back moves to the previous page (left half of the screen)
	Back
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}
