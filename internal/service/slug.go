package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

const (
	maxSlugLength   = 80
	maxSlugAttempts = 5
)

// Slugify lowercases s, folds accented Latin letters to ASCII and joins the
// remaining alphanumeric runs with dashes. It returns "" when nothing
// usable is left.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return strings.Trim(slug, "-")
}

// createWithSlug calls create with the slug of preferred (or of fallback
// when preferred is blank), then with numbered variants while the slug is
// taken. A random suffix is the last resort.
func createWithSlug(ctx context.Context, preferred, fallback, kind string, create func(ctx context.Context, slug string) error) error {
	base := Slugify(preferred)
	if base == "" {
		base = Slugify(fallback)
	}
	if base == "" {
		base = kind
	}

	for attempt := 1; attempt <= maxSlugAttempts+1; attempt++ {
		slug := base
		switch {
		case attempt > maxSlugAttempts:
			slug = fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
		case attempt > 1:
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := create(ctx, slug)
		if err == nil || !errors.Is(err, models.ErrAlreadyExists) {
			return err
		}
	}

	return models.ErrConflictWithMsg(fmt.Sprintf("could not allocate a unique %s slug", kind))
}
