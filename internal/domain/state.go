package domain

import "time"

// SearchState is an immutable snapshot of one console session.
// Every transition returns a new value; slices and maps are never shared
// with the receiver.
type SearchState struct {
	Form      SearchForm
	Flights   []DisplayFlight
	Loading   bool
	LastError error
}

// NewSearchState returns the state of a freshly opened console.
func NewSearchState() SearchState {
	return SearchState{
		Form: SearchForm{
			Filters: Filters{Enabled: FilterSet{}},
		},
		Flights: []DisplayFlight{},
	}
}

// WithStartDate returns a copy with the start date replaced. Nil clears it.
func (s SearchState) WithStartDate(t *time.Time) SearchState {
	s.Form.DateRange.Start = copyTime(t)
	return s.Clone()
}

// WithEndDate returns a copy with the end date replaced. Nil clears it.
func (s SearchState) WithEndDate(t *time.Time) SearchState {
	s.Form.DateRange.End = copyTime(t)
	return s.Clone()
}

// WithFilterToggled returns a copy with the filter switched on or off.
func (s SearchState) WithFilterToggled(name FilterName, checked bool) SearchState {
	s = s.Clone()
	s.Form.Filters = s.Form.Filters.Toggle(name, checked)
	return s
}

// WithFilterValue returns a copy with a filter's text input changed.
func (s SearchState) WithFilterValue(name FilterName, value string) SearchState {
	s = s.Clone()
	s.Form.Filters = s.Form.Filters.SetValue(name, value)
	return s
}

// WithSearchStarted marks a search as outstanding.
func (s SearchState) WithSearchStarted() SearchState {
	s = s.Clone()
	s.Loading = true
	return s
}

// WithSearchSucceeded stores the new results and clears the loading flag.
func (s SearchState) WithSearchSucceeded(flights []DisplayFlight) SearchState {
	s = s.Clone()
	s.Flights = copyFlights(flights)
	s.Loading = false
	s.LastError = nil
	return s
}

// WithSearchFailed clears the loading flag and records the error.
// Previous results stay in place.
func (s SearchState) WithSearchFailed(err error) SearchState {
	s = s.Clone()
	s.Loading = false
	s.LastError = err
	return s
}

// WithSearchRejected clears the loading flag of a search that never
// reached the remote endpoint. Results and LastError are unchanged.
func (s SearchState) WithSearchRejected() SearchState {
	s = s.Clone()
	s.Loading = false
	return s
}

// ErrorKind returns the kind of the last failure, or "" if the last search
// succeeded or failed for a reason other than the remote call.
func (s SearchState) ErrorKind() ErrorKind {
	return KindOf(s.LastError)
}

// Clone returns a copy that shares no mutable memory with s.
func (s SearchState) Clone() SearchState {
	s.Flights = copyFlights(s.Flights)
	s.Form.Filters.Enabled = s.Form.Filters.Enabled.Clone()
	s.Form.DateRange.Start = copyTime(s.Form.DateRange.Start)
	s.Form.DateRange.End = copyTime(s.Form.DateRange.End)
	return s
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyFlights(in []DisplayFlight) []DisplayFlight {
	out := make([]DisplayFlight, len(in))
	copy(out, in)
	return out
}
