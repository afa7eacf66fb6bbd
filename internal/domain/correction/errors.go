package correction

import "errors"

var (
	ErrInvalidOwnerID = errors.New("invalid owner id")
	ErrInvalidMealID  = errors.New("invalid meal id")

	// ErrDuplicateEdit is returned by Repository.Create when a row with the
	// same (edit_key, field_name) already exists. It is the DB-level backstop
	// behind RecordEdit's ExistsByEditKey precheck: the precheck narrows the
	// common case, this catches the race when two redeliveries land between
	// the check and the write.
	ErrDuplicateEdit = errors.New("correction row already recorded for this edit")
)
