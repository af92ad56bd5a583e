package ports

// ConfigFileFinder defines the contract for locating the run-on-save configuration file.
type ConfigFileFinder interface {
	Find() (string, error)
}
