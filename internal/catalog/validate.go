package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var recordValidate = validator.New(validator.WithRequiredStructEnabled())

// validate checks struct tags on every record and then the cross references
// between categories, algorithms and content. All problems are reported.
func validate(categories []Category, algorithms []Algorithm, contents []Content) error {
	var problems []error

	ids := make(map[string]Algorithm, len(algorithms))
	for i, alg := range algorithms {
		if err := recordValidate.Struct(alg); err != nil {
			problems = append(problems, fmt.Errorf("algorithm #%d (%q): %w", i, alg.ID, err))
		}
		if _, dup := ids[alg.ID]; dup {
			problems = append(problems, fmt.Errorf("duplicate algorithm id %q", alg.ID))
			continue
		}
		ids[alg.ID] = alg
	}

	defined := make(map[CategoryID]bool, len(categories))
	for _, category := range categories {
		if err := recordValidate.Struct(category); err != nil {
			problems = append(problems, fmt.Errorf("category %q: %w", category.ID, err))
		}
		if defined[category.ID] {
			problems = append(problems, fmt.Errorf("duplicate category id %q", category.ID))
		}
		defined[category.ID] = true
		for _, id := range category.Algorithms {
			alg, ok := ids[id]
			if !ok {
				problems = append(problems, fmt.Errorf("category %q references unknown algorithm %q", category.ID, id))
				continue
			}
			if alg.Category != category.ID {
				problems = append(problems, fmt.Errorf("category %q lists %q which belongs to %q", category.ID, id, alg.Category))
			}
		}
	}

	for _, alg := range algorithms {
		if alg.Category != "" && !defined[alg.Category] {
			problems = append(problems, fmt.Errorf("algorithm %q references undefined category %q", alg.ID, alg.Category))
		}
	}

	seenContent := make(map[string]bool, len(contents))
	for _, entry := range contents {
		if err := recordValidate.Struct(entry); err != nil {
			problems = append(problems, fmt.Errorf("content %q: %w", entry.ID, err))
		}
		if seenContent[entry.ID] {
			problems = append(problems, fmt.Errorf("duplicate content id %q", entry.ID))
		}
		seenContent[entry.ID] = true
		if _, ok := ids[entry.ID]; entry.ID != "" && !ok {
			problems = append(problems, fmt.Errorf("content %q has no catalog entry", entry.ID))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}
