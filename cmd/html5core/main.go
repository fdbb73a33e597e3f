// Command html5core is a CLI for parsing, tokenizing, and querying HTML
// documents with the html5core package.
package main

func main() {
	Execute()
}
