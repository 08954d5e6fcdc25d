package regexfsm

// Config controls optional compile-time behavior.
//
// Example:
//
//	config := regexfsm.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := regexfsm.CompileWithConfig(`foo+`, config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering of Test calls:
	// when the pattern has a required literal spine, an input not
	// containing that literal anywhere is rejected without ever running
	// the DFA. Purely a performance optimization; never changes a
	// decision. Default: true.
	EnablePrefilter bool
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
	}
}
