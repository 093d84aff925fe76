package session

import "time"

// Window is one trading session's fixed UTC open/close hours. A session is
// active on the half-open interval [Open, Close) at hour granularity.
type Window struct {
	Name  string
	Open  int // UTC hour, inclusive
	Close int // UTC hour, exclusive
}

// Windows is the fixed session table, in display order.
var Windows = []Window{
	{Name: "Tokyo", Open: 0, Close: 9},
	{Name: "London", Open: 8, Close: 17},
	{Name: "New York", Open: 13, Close: 22},
}

// Status is a window plus whether it is active at some instant.
type Status struct {
	Window
	Active bool
}

// Contains reports whether the given UTC hour falls inside the window.
func (w Window) Contains(hourUTC int) bool {
	return w.Open <= hourUTC && hourUTC < w.Close
}

// StatusAt evaluates every window against the instant's UTC hour,
// returning them in table order.
func StatusAt(t time.Time) []Status {
	hour := t.UTC().Hour()
	out := make([]Status, len(Windows))
	for i, w := range Windows {
		out[i] = Status{Window: w, Active: w.Contains(hour)}
	}
	return out
}

// OpeningAt returns the windows whose open hour equals the given UTC hour.
func OpeningAt(hourUTC int) []Window {
	var out []Window
	for _, w := range Windows {
		if w.Open == hourUTC {
			out = append(out, w)
		}
	}
	return out
}

// ClosingAt returns the windows whose close hour equals the given UTC hour.
func ClosingAt(hourUTC int) []Window {
	var out []Window
	for _, w := range Windows {
		if w.Close == hourUTC {
			out = append(out, w)
		}
	}
	return out
}
