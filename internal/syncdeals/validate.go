package syncdeals

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/coursespeak/coursespeak/internal/model"
)

// Validate checks every incoming record for the minimum sync requirements:
// an id or slug, a title, and a url. A sync run that would persist invalid
// records must abort before the destructive overwrite.
func Validate(deals []model.Deal) error {
	v := validator.New()
	invalid := 0
	var firstErr error
	for i := range deals {
		if err := v.Struct(deals[i]); err != nil {
			invalid++
			if firstErr == nil {
				firstErr = fmt.Errorf("record %d (id=%q title=%q): %w", i, deals[i].ID, deals[i].Title, err)
			}
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation, first failure: %w", invalid, len(deals), firstErr)
	}
	return nil
}
