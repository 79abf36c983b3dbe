package main

import (
	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/cmd"
	"github.com/stereoplay/stereoplay/config"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/request"
	"github.com/stereoplay/stereoplay/where"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go request.CollectGarbage(where.Requests(), request.TTL)

	cmd.Execute()
}
