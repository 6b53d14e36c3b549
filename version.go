package tortuga

// Version is the semantic version of the interpreter, reported by the CLI.
var Version = "0.7.0"

// BuildDate may be overridden at link time (-ldflags "-X ...BuildDate=...").
var BuildDate = "unknown"
