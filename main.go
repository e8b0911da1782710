package main

import (
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
