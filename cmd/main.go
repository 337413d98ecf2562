package main

import (
	"log"

	"github.com/vm2tools/canmatrix/app/convert"
	"github.com/vm2tools/canmatrix/app/decode"
	"github.com/vm2tools/canmatrix/app/encode"
	"github.com/vm2tools/canmatrix/app/gen"
	"github.com/vm2tools/canmatrix/pkg/cli"
)

func main() {
	c := cli.NewCLI(
		"canmatrix",
		"Encode and decode FOTON VM2 body CAN signals.",
	)

	c.AddCommands(
		decode.NewCommand(),
		encode.NewCommand(),
		convert.NewCommand(),
		gen.NewCommand(),
	)

	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}
