package orthopair

import "fmt"

// noUpperBound disables the class upper bound in checkItems.
const noUpperBound = -1

// Validate checks a slice of label sets against nClasses.
//
// Contract:
//   - nClasses > 0, otherwise ErrInvalidClasses;
//   - every item is non-empty (ErrEmptyLabelSet);
//   - every class index lies in [0, nClasses) (ErrClassOutOfRange);
//   - no item lists a class twice (ErrDuplicateClass).
//
// Errors are wrapped with the offending item index.
// Complexity: O(Σ|item|).
func Validate(labels []LabelSet, nClasses int) error {
	if nClasses <= 0 {
		return fmt.Errorf("Validate: %w", ErrInvalidClasses)
	}
	return checkItems(labels, nClasses)
}

// ValidateItems checks label sets without an upper class bound: items must be
// non-empty, duplicate-free and hold non-negative class indices.
func ValidateItems(labels []LabelSet) error {
	if err := checkItems(labels, noUpperBound); err != nil {
		return fmt.Errorf("ValidateItems: %w", err)
	}
	return nil
}

// MaxClass returns the largest class index mentioned by labels, or -1 when
// labels holds no class at all.
func MaxClass(labels []LabelSet) int {
	maxClass := -1
	for _, item := range labels {
		for _, c := range item {
			if c > maxClass {
				maxClass = c
			}
		}
	}
	return maxClass
}

// checkItems validates each item; limit<0 disables the upper bound.
func checkItems(labels []LabelSet, limit int) error {
	for idx, item := range labels {
		if len(item) == 0 {
			return fmt.Errorf("item %d: %w", idx, ErrEmptyLabelSet)
		}
		for k, c := range item {
			if c < 0 || (limit != noUpperBound && c >= limit) {
				return fmt.Errorf("item %d: class %d: %w", idx, c, ErrClassOutOfRange)
			}
			// Label sets are tiny; a quadratic scan avoids a map per item.
			for _, prev := range item[:k] {
				if prev == c {
					return fmt.Errorf("item %d: class %d: %w", idx, c, ErrDuplicateClass)
				}
			}
		}
	}
	return nil
}
