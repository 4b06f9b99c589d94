// cmd/protcalc/main.go
package main

import (
	"protcalc/internal/app"
	"protcalc/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
