package query

import (
	"strings"

	"github.com/roach88/datasets/internal/apperr"
)

// Order is a sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// ParseOrder parses "asc" or "desc", case-insensitively. An empty string
// means ascending.
func ParseOrder(s string) (Order, error) {
	switch {
	case s == "", strings.EqualFold(s, "asc"):
		return Asc, nil
	case strings.EqualFold(s, "desc"):
		return Desc, nil
	default:
		return Asc, apperr.Newf(apperr.CodeBadRequest, "invalid order %q: must be asc or desc", s)
	}
}
