package component

//go:generate go tool mockgen -destination=./mocks/clip_mock.go -package=mocks . Clip

// Clip is the playback surface AudioSystem needs. *audio.Player satisfies it.
type Clip interface {
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
	Play()
	Pause()
}

type Audio struct {
	Names   []string
	Players []Clip
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// Index returns the clip slot for name, or -1.
func (a *Audio) Index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Trigger flags slot i to start on the next AudioSystem update.
func (a *Audio) Trigger(i int) bool {
	if a == nil || i < 0 || i >= len(a.Play) {
		return false
	}
	a.Play[i] = true
	return true
}
