package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Finished normally
	SymbolFail    = "✗" // Failed
	SymbolWarning = "⚠" // Finished with something to look at
	SymbolStopped = "⊘" // Ended early by the user
)
