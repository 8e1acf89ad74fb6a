package service

import (
	"context"

	"github.com/dom/storefront-api/internal/slug"
	"github.com/google/uuid"
)

const maxSlugAttempts = 50

type slugChecker func(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error)

// uniqueSlug derives a slug from name and appends -2, -3, ... until no row
// other than ownerID uses it.
func uniqueSlug(ctx context.Context, name, fallback string, ownerID uuid.UUID, taken slugChecker) (string, error) {
	base := slug.WithFallback(name, fallback)
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := slug.Candidate(base, n)
		used, err := taken(ctx, candidate, ownerID)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}
	return "", ErrSlugTaken
}
