package version

// BuildVersion is set at build time with -ldflags.
var BuildVersion = "<version>"
