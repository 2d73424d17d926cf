package component

type Score struct {
	Points int
}

var ScoreComponent = NewComponent[Score]()
