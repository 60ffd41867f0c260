package mindmate

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/nithin218/mindmate.Version=...".
var Version = "0.1.0"
