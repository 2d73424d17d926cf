package component

// Session tracks level progress. It lives on a single entity created by the
// level loader.
type Session struct {
	RunID     string
	Level     string
	Total     int
	Remaining int
	Cleared   bool
}

var SessionComponent = NewComponent[Session]()
