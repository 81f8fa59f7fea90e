package main

import "github.com/BrugadaSyndrome/bslogger"

const (
	fatal severity = iota
	warning
)

type severity int

// checkError reports a non-nil err. fatal exits, warning carries on.
func checkError(err error, logger bslogger.Logger, s severity) {
	if err == nil {
		return
	}
	if s == warning {
		logger.Warning(err.Error())
		return
	}
	logger.Fatal(err.Error())
}
