package tui

// section is the independently loading state of one dashboard region. Each
// region carries its own loading flag and error so a failed fetch degrades
// only its own rendering.
//
// seq guards against out-of-order arrivals: every issued fetch bumps seq and
// embeds it in the result message, and responses for superseded requests are
// dropped instead of racing last-resolved-wins.
type section[T any] struct {
	data    T
	loading bool
	err     error
	seq     int
	ready   bool // true once the first successful fetch has landed
}

// begin marks a new fetch and returns its sequence number. A silent fetch
// leaves the loading flag untouched so the UI keeps rendering current data.
func (s *section[T]) begin(silent bool) int {
	s.seq++
	if !silent {
		s.loading = true
	}
	return s.seq
}

// accept reports whether a response with the given sequence number is still
// current. Stale responses are dropped wholesale.
func (s *section[T]) accept(seq int) bool {
	return seq == s.seq
}

// finish applies a fetch result. On silent failures the previous data and
// error state are both retained.
func (s *section[T]) finish(data T, err error, silent bool) {
	s.loading = false
	if err != nil {
		if !silent {
			s.err = err
		}
		return
	}
	s.data = data
	s.err = nil
	s.ready = true
}
