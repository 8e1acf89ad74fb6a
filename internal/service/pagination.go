package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ParsePage resolves raw page/perPage query values. Missing, non-numeric or
// non-positive values fall back to page 1 and defaultPerPage; perPage is
// capped at maxPerPage. Page numbers whose offset would overflow int are
// clamped to the last representable page, which is past any real listing.
func ParsePage(page, perPage string, defaultPerPage, maxPerPage int) domain.Page {
	p := domain.Page{Number: 1, PerPage: defaultPerPage}

	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(perPage)); err == nil && n > 0 {
		p.PerPage = n
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	if last := math.MaxInt/p.PerPage + 1; p.Number > last {
		p.Number = last
	}
	return p
}

// ParseRatings splits a pipe-delimited rating list, dropping entries that are
// not integers and keeping each value once.
func ParseRatings(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var ratings []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(raw, "|") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		ratings = append(ratings, n)
	}
	return ratings
}

// ParsePrice returns nil for an empty or unparsable price bound.
func ParsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
