package debug

import "os"

const (
	DebugShowSetupKey = "DEBUG_SHOW_SETUP"
	DebugHttpKey      = "DEBUG_HTTP"
)

func isDebugShowSetupSet() bool {
	return os.Getenv(DebugShowSetupKey) == "true"
}

func isDebugHttpSet() bool {
	return os.Getenv(DebugHttpKey) == "true"
}
