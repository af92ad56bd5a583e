package ports

/*
StateStore defines the interface for persisting run-on-save state that
outlives a single process, such as whether the commands are enabled.
*/
type StateStore interface {
	// IsEnabled reports whether commands should run. A store with no saved state is enabled.
	IsEnabled() (bool, error)

	// SetEnabled persists the enabled flag.
	SetEnabled(enabled bool) error
}
