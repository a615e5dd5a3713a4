package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"weddinginvite/internal/domain"
)

// slugSuffixLength is the number of hex characters appended to a taken slug.
const slugSuffixLength = 4

// maxSlugAttempts bounds the number of suffixed candidates tried per allocation.
const maxSlugAttempts = 8

// Slugify lowercases s, strips diacritics and joins words with single dashes.
// Characters outside [a-z0-9] are dropped. Slugify is idempotent.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-', r == '_', unicode.IsSpace(r):
			pendingDash = true
		}
	}
	return b.String()
}

func randomSlugSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLength]
}

type slugAllocator struct {
	clientRepo domain.ClientRepository
	suffix     func() string
}

// NewSlugAllocator returns a SlugAllocator that keeps the base slug when it is
// free and otherwise appends a random 4-hex-character suffix, checking each
// candidate until one is free.
func NewSlugAllocator(clientRepo domain.ClientRepository) domain.SlugAllocator {
	return &slugAllocator{clientRepo: clientRepo, suffix: randomSlugSuffix}
}

func (a *slugAllocator) Allocate(ctx context.Context, base string) (string, error) {
	taken, err := a.clientRepo.SlugExists(ctx, base)
	if err != nil {
		return "", domain.Upstream("check slug", err)
	}
	if !taken {
		return base, nil
	}
	for range maxSlugAttempts {
		candidate := base + "-" + a.suffix()
		taken, err := a.clientRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", domain.Upstream("check slug", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domain.Upstream("allocate slug", fmt.Errorf("slug %q: no free suffix after %d attempts: %w", base, maxSlugAttempts, domain.ErrSlugTaken))
}
