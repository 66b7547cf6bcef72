// main.go
package main

import "farm-storefront/cmd"

func main() {
	cmd.Execute()
}
