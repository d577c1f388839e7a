// Package env keeps names of environment variables with special significance to
// Lispy.
package env

// Environment variables with special significance to Lispy.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                  = "HOME"
	LISPY_TEST_TIME_SCALE = "LISPY_TEST_TIME_SCALE"
	XDG_CONFIG_HOME       = "XDG_CONFIG_HOME"
	XDG_STATE_HOME        = "XDG_STATE_HOME"
)
