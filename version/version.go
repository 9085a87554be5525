package version

import "fmt"

// Set at build time with -ldflags "-X rlz/version.GitTag=..."
var (
	GitCommit string
	GitTag    string
)

func String() string {
	tag := GitTag
	if tag == "" {
		tag = "dev"
	}
	if GitCommit == "" {
		return fmt.Sprintf("rlz %s", tag)
	}
	return fmt.Sprintf("rlz %s (%s)", tag, GitCommit)
}
