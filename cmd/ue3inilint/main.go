// Command ue3inilint lints UnrealEngine 3 style .ini config files.
package main

import "github.com/robojumper/ue3-config-parser/internal/cli"

func main() {
	cli.Execute()
}
