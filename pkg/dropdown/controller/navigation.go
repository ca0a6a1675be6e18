package controller

// Index arithmetic for keyboard navigation. An index of -1 means "nothing
// selected"; every function returns -1 for an empty list.

// NextIndex returns the index after current, wrapping to the first option
// when current is the last one or -1.
func NextIndex(current, length int) int {
	if length <= 0 {
		return -1
	}
	if current < 0 || current >= length-1 {
		return 0
	}
	return current + 1
}

// PrevIndex returns the index before current, wrapping to the last option
// when current is the first one or -1.
func PrevIndex(current, length int) int {
	if length <= 0 {
		return -1
	}
	if current <= 0 || current >= length {
		return length - 1
	}
	return current - 1
}

// FirstIndex returns 0, or -1 for an empty list.
func FirstIndex(length int) int {
	if length <= 0 {
		return -1
	}
	return 0
}

// LastIndex returns length-1, or -1 for an empty list.
func LastIndex(length int) int {
	if length <= 0 {
		return -1
	}
	return length - 1
}

// IndexOf returns the position of id in options, or -1.
func IndexOf(options []Option, id string) int {
	if id == "" {
		return -1
	}
	for i, opt := range options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}
