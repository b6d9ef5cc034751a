package port

// XDGPaths provides XDG Base Directory paths for chordbar.
type XDGPaths interface {
	ConfigDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)
	LogDir() (string, error)
}
