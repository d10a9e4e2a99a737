// Command retdeclift is a small demonstration front end for the arm64
// lifter core: it parses a minimal textual instruction syntax (disassembly
// proper is the front end's job, not this module's) and prints the LLVM IR
// the translator produces for it.
package main

import "github.com/2lambda123/avast-retdec/cmd/retdeclift/cmd"

func main() {
	cmd.Execute()
}
