package db

import "log"

// Closer is the shutdown surface every db client shares.
type Closer interface {
	Close() error
}

func CloseClient(name string, c Closer) {
	if c == nil {
		log.Printf("[INFO] `%s` Nothing to Close", name)
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("[WARN] Failed to Close `%s`: %v", name, err)
	} else {
		log.Printf("[INFO] `%s` Closed", name)
	}
}
