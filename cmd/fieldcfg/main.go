package main

import (
	"os"

	"fieldcfg/internal/field"
	"fieldcfg/internal/logging"
	"fieldcfg/internal/telemetry"
)

func main() {
	logging.InitFromEnv()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fe, ok := field.AsFatal(r)
		if !ok {
			panic(r)
		}
		telemetry.FatalErrors.Inc()
		logging.L().Error("exiting on fatal configuration error", "err", fe.Error())
		os.Exit(1)
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
