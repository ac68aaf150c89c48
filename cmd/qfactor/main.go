package main

import (
	"log"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/cmd/qfactor/cmd"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	root := cmd.RootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
