package component

// Target is something a whack can clean up. Replacement names the prefab
// left in its place.
type Target struct {
	Kind        string
	Radius      float64
	Replacement string
	Hit         bool
}

var TargetComponent = NewComponent[Target]()

// Strike marks the target hit. Only the first call returns true.
func (t *Target) Strike() bool {
	if t.Hit {
		return false
	}
	t.Hit = true
	return true
}
