package debug

import "os"

const (
	DebugShowSetupKey = "DEBUG_SHOW_SETUP"
)

func isDebugShowSetupSet() bool {
	return os.Getenv(DebugShowSetupKey) == "true"
}
