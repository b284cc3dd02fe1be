package debug

const (
	Debug = true
)

func IsDebug() bool {
	return Debug
}

// IsDebugShowSetup gates logging of the resolved setup values, which include
// backend credentials.
func IsDebugShowSetup() bool {
	return Debug && isDebugShowSetupSet()
}
