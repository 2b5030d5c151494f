package main

import (
	"log/slog"
	"os"

	"github.com/hupe1980/bitarr"
	"lukechampine.com/uint128"
)

// Feature flags packed into a single byte.
const (
	flagCompression = iota
	flagEncryption
	flagTracing
	flagReadOnly
)

func main() {
	// 1. Setup Structured Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// 2. Flag register on uint8
	var flags uint8
	flags = bitarr.SetBit(flags, flagCompression, true)
	flags = bitarr.SetBit(flags, flagTracing, true)

	logger.Info("flags set",
		"bits", bitarr.BString(flags),
		"compression", bitarr.Bit(flags, flagCompression),
		"encryption", bitarr.Bit(flags, flagEncryption),
	)

	flags = bitarr.FlipBit(flags, flagTracing)
	logger.Info("tracing toggled", "bits", bitarr.BString(flags))

	// 3. Round trip through the string form
	restored, err := bitarr.ParseBString[uint8](bitarr.BString(flags))
	if err != nil {
		logger.Error("parse failed", "error", err)
		os.Exit(1)
	}
	logger.Info("round trip", "match", restored == flags)

	// 4. 128-slot occupancy map without a heap allocation
	occupied := uint128.Zero
	for _, slot := range []int{0, 42, 63, 64, 127} {
		occupied = bitarr.SetBit128(occupied, slot, true)
	}
	logger.Info("slot map",
		"bits", bitarr.BString128(occupied),
		"slot42", bitarr.Bit128(occupied, 42),
		"slot43", bitarr.Bit128(occupied, 43),
	)
}
