package tsdate

import "github.com/sirupsen/logrus"

// log is the package-level logger used for the warnings spec.md §7 requires.
// Its only warning is GuessFreq falling through to the Undefined frequency;
// asfreq failures are returned to the caller, not logged. Callers can
// redirect it with SetLogger.
var log = logrus.StandardLogger()

// SetLogger replaces the logger used for package warnings.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

func warnUndefinedFrequency(context string) {
	log.WithField("component", "tsdate").Warnf("could not determine a definite frequency, falling back to Undefined: %s", context)
}
