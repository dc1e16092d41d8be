package main

import (
	"fraudscope/cmd"
	"fraudscope/internal/logger"
)

func main() {
	defer logger.RecoverPanic()
	cmd.Execute()
}
