// Command stepper loads a flat binary image into RAM at a configurable
// origin, wires a reset vector pointing at that origin, and single-steps
// the 6502 core a fixed number of cycles, logging register and flag
// state whenever the engine starts executing a different instruction
// variant from the previous one. Back-to-back executions of the same
// opcode are logged once.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/chacon6502/core6502/bus"
	"github.com/chacon6502/core6502/cpu"
)

var (
	origin = flag.Uint("origin", 0x8000, "address the program image is loaded at and the reset vector points to")
	cycles = flag.Uint("cycles", 100, "number of bus cycles to execute")
	image  = flag.String("image", "", "path to a flat binary program image (required)")
)

func main() {
	flag.Parse()
	if *image == "" {
		log.Fatal("stepper: -image is required")
	}

	data, err := os.ReadFile(*image)
	if err != nil {
		log.Fatalf("stepper: reading image: %v", err)
	}

	ram, err := bus.NewRAM(1 << 16)
	if err != nil {
		log.Fatalf("stepper: allocating RAM: %v", err)
	}
	ram.Load(uint16(*origin), data)
	ram.Load(cpu.ResetVector, []uint8{uint8(*origin), uint8(*origin >> 8)})

	router := bus.NewRouter()
	if err := router.Register(0x0000, 0xFFFF, ram); err != nil {
		log.Fatalf("stepper: registering RAM: %v", err)
	}

	e := cpu.New(router)
	if err := e.Reset(); err != nil {
		log.Fatalf("stepper: reset: %v", err)
	}

	var last *cpu.Variant
	for i := uint(0); i < *cycles; i++ {
		if err := e.Step(); err != nil {
			log.Fatalf("stepper: step %d: %v", i, err)
		}
		if v := e.Variant(); v != last {
			last = v
			log.Printf("PC=%#04x A=%#02x X=%#02x Y=%#02x S=%#02x P=%#02x opcode=%s cycles=%d",
				e.Reg.PC, e.Reg.A, e.Reg.X, e.Reg.Y, e.Reg.S, e.Flags.Pack(), v.Mnemonic, e.Cycles())
		}
	}
}
