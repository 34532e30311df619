package fetchkit

import "runtime/debug"

// Version is the library version, set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/aydogan/fetchkit.Version=1.0.0"
var Version = "dev"

// UserAgent returns the User-Agent value sent when the caller did not
// set one.
func UserAgent() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return "fetchkit/" + v
}
