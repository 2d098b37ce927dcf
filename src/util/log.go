package util

import "github.com/tliron/commonlog"

// Log verbosity levels passed to commonlog.
const (
	quietVerbosity   = 0 // Errors and warnings.
	verboseVerbosity = 2 // Everything down to debug messages.
)

// ConfigureLog configures the process wide log backend from opt. Log output goes to stderr. A backend must have
// been registered by importing it, e.g. github.com/tliron/commonlog/simple.
func ConfigureLog(opt Options) {
	v := quietVerbosity
	if opt.Verbose {
		v = verboseVerbosity
	}
	commonlog.Configure(v, nil)
}
