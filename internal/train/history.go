package train

// History is the ordered sequence of per-epoch losses recorded by a run.
//
// Entry i is the loss computed with the parameters in effect before update i,
// so a run of E epochs records exactly E losses.
type History struct {
	losses []float64
}

// maxPrealloc bounds the capacity reserved up front for long runs.
const maxPrealloc = 1 << 16

func newHistory(epochs int) *History {
	return &History{losses: make([]float64, 0, min(epochs, maxPrealloc))}
}

func (h *History) record(loss float64) {
	h.losses = append(h.losses, loss)
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.losses)
}

// First returns the loss of the first epoch, or false for an empty history.
func (h *History) First() (float64, bool) {
	if len(h.losses) == 0 {
		return 0, false
	}
	return h.losses[0], true
}

// Last returns the loss of the last epoch, or false for an empty history.
func (h *History) Last() (float64, bool) {
	if len(h.losses) == 0 {
		return 0, false
	}
	return h.losses[len(h.losses)-1], true
}

// Values returns a copy of the recorded losses.
func (h *History) Values() []float64 {
	return append([]float64(nil), h.losses...)
}
