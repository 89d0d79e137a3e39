// Package main provides the CLI entrypoint for whiteelephant.
package main

func main() {
	Execute()
}
