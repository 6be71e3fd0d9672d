package sqldb

import "errors"

// ErrNoRows is the backend-neutral no-result error. Implementations map
// their driver's sentinel to this one so callers never import a driver.
var ErrNoRows = errors.New("sqldb: no rows in result set")
