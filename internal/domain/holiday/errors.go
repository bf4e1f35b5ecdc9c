package holiday

import "errors"

var ErrHolidayNotFound = errors.New("holiday entry not found")
