package plando

// Logger is the minimal leveled logging surface the rest of the module
// depends on; see the charmlog package for the default implementation.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
	Fatal(msg any, keyvals ...any)
}
