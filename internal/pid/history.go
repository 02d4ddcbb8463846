package pid

// HistorySize is the number of PV samples retained for derivative estimation
const HistorySize = 10

// History is a fixed size ring of PV samples. Index 0 is the most recent sample.
type History struct {
	samples [HistorySize]float64
	head    int
	primed  bool
}

// Set replaces the sample at index 0. The very first sample is copied into
// every slot so that no derivative kick is produced by the initial zero values.
func (h *History) Set(value float64) {
	if !h.primed {
		for i := range h.samples {
			h.samples[i] = value
		}
		h.primed = true
	}
	h.samples[h.head] = value
}

// At returns the sample taken index scans ago
func (h *History) At(index int) float64 {
	return h.samples[(h.head+index)%HistorySize]
}

// Shift ages all samples by one position and drops the oldest one.
// Index 0 keeps the newest value until it is replaced by Set.
func (h *History) Shift() {
	newest := h.samples[h.head]
	h.head = (h.head + HistorySize - 1) % HistorySize
	h.samples[h.head] = newest
}

// Values returns a copy of all samples, newest first
func (h *History) Values() []float64 {
	result := make([]float64, HistorySize)
	for i := range result {
		result[i] = h.At(i)
	}
	return result
}
