package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContent is returned when loaded content fails validation.
var ErrInvalidContent = errors.New("invalid content")

// Validate checks the invariants the search index relies on.
// Project ids must be unique, titles and names non-blank and skill levels within 0..100.
func (c *Content) Validate() error {
	seen := make(map[int]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalidContent, p.ID)
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: project at index %d has no title", ErrInvalidContent, i)
		}
	}

	for _, group := range c.Skills.Ordered() {
		for i, s := range group.Skills {
			if strings.TrimSpace(s.Name) == "" {
				return fmt.Errorf("%w: %s skill at index %d has no name", ErrInvalidContent, group.Key, i)
			}
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: skill %q level %d out of range", ErrInvalidContent, s.Name, s.Level)
			}
		}
	}

	for i, e := range c.Experience {
		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("%w: experience at index %d has no title", ErrInvalidContent, i)
		}
	}
	for i, a := range c.Achievements {
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("%w: achievement at index %d has no title", ErrInvalidContent, i)
		}
	}
	for i, cert := range c.Certifications {
		if strings.TrimSpace(cert.Name) == "" {
			return fmt.Errorf("%w: certification at index %d has no name", ErrInvalidContent, i)
		}
	}

	return nil
}
