// Command modulemd-validator validates modulemd YAML files given on
// the command line.
package main

import "modulemd/internal/cliapp"

func main() {
	cliapp.Execute()
}
