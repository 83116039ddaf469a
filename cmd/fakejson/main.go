// Command fakejson generates fake JSON or YAML data from a schema of data
// type descriptors.
//
//	fakejson --file schema.json --count 3 -u 'Team:red|blue'
//	fakejson data 'FirstName*' -n 5
//	fakejson list
//	fakejson openapi api.yaml --component User --generate
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
