package cli

var (
	verbose    bool
	configPath string

	// for server commands
	listenAddr string

	// for replay command
	replayWidth  int
	replayHeight int
)
