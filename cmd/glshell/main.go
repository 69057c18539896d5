package main

import (
	"glshell/internal/app"
	"glshell/internal/platform/report"
)

func main() {
	if err := app.New().Run(); err != nil {
		report.Fatalf("glshell: %v", err)
	}
}
