package cli

const (
	FlagHome       = "home"
	FlagLogLevel   = "log-level"
	FlagCompress   = "compress"
	FlagDecompress = "decompress"
	FlagJobs       = "jobs"
	FlagVerify     = "verify"
	FlagStdout     = "stdout"
	FlagLimit      = "limit"
)
