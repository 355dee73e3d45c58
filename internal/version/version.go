package version

// Version is overridden at build time with -ldflags "-X fatfingerpicasso/internal/version.Version=...".
var Version = "0.1.0-dev"

func String() string { return "Fat Finger Picasso " + Version }
