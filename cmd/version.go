// Package cmd holds build metadata shared by the mplint binaries. Release
// builds set it with ldflags, e.g.
//
//	-X github.com/thoreinstein/mplint/cmd.Version=v1.2.0
package cmd

// Set via ldflags; the defaults identify a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ShortCommit returns the first seven characters of Commit.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
