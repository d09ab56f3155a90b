package datepicker

// focusTrap keeps keyboard focus inside the open modal and remembers where to return.
type focusTrap struct {
	elements []string
	current  string
	restore  string
}

func (f *focusTrap) activate(elements []string, previously string) {
	f.elements = append([]string(nil), elements...)
	f.restore = previously
	f.current = ""
	if len(f.elements) > 0 {
		f.current = f.elements[0]
	}
}

// tab moves focus one step, wrapping first<->last.
func (f *focusTrap) tab(shift bool) string {
	n := len(f.elements)
	if n == 0 {
		return f.current
	}
	idx := f.indexOf(f.current)
	switch {
	case idx < 0 && shift:
		idx = n - 1
	case idx < 0:
		idx = 0
	case shift && idx == 0:
		idx = n - 1
	case !shift && idx == n-1:
		idx = 0
	case shift:
		idx--
	default:
		idx++
	}
	f.current = f.elements[idx]
	return f.current
}

func (f *focusTrap) focus(element string) bool {
	if f.indexOf(element) < 0 {
		return false
	}
	f.current = element
	return true
}

// release ends the trap and returns the element that had focus before opening.
func (f *focusTrap) release() string {
	target := f.restore
	f.elements = nil
	f.current = target
	f.restore = ""
	return target
}

func (f *focusTrap) indexOf(element string) int {
	for i, e := range f.elements {
		if e == element {
			return i
		}
	}
	return -1
}
