package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds an entity's clips with parallel play/stop request flags. The
// audio system flushes the flags each tick; a nil player slot is tolerated
// so tests can flag clips without an audio context.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// FlagPlay requests a one-shot play of the named clip.
func (a *Audio) FlagPlay(name string) {
	if a == nil {
		return
	}
	for i := range a.Names {
		if a.Names[i] == name {
			if i < len(a.Play) {
				a.Play[i] = true
			}
		}
	}
}

var AudioComponent = NewComponentKind[Audio]()
