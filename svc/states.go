package svc

// Internal service states
const (
	StateREADY = iota
	StateRUNNING
	StateSTOPPED
)
