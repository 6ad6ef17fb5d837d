package tui

import (
	"errors"
	"strconv"
	"strings"
)

type countKind int

const (
	countGroups countKind = iota
	countDraw
)

const (
	msgNoNames    = "Please enter some names."
	msgNoListName = "Please enter a list name."
)

// parseCount turns a count field into a positive integer, or an error whose
// text is shown to the user as-is.
func parseCount(raw string, kind countKind) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if kind == countDraw {
			return 0, errors.New("Please enter a valid number to draw.")
		}
		return 0, errors.New("Please enter a valid number of groups.")
	}
	if n <= 0 {
		if kind == countDraw {
			return 0, errors.New("Number to draw must be greater than 0.")
		}
		return 0, errors.New("Number of groups must be greater than 0.")
	}
	return n, nil
}
