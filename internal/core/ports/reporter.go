package ports

// Reporter receives user-facing progress messages.
type Reporter interface {
	// Output appends a line to the output log.
	Output(message string)
	// Status shows a short, transient status message.
	Status(message string)
	// Error reports a failure.
	Error(message string)
	// Clear empties the output log.
	Clear()
}
