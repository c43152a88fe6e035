package lexiconfigs

import (
	"math"

	"github.com/reusee/lexi/cmds"
	"github.com/reusee/lexi/configs"
)

// MaxInputBytes bounds the size of a source file lexi will read.
type MaxInputBytes int64

var maxInputBytesFlag = cmds.Var[int64]("-max-input-bytes", "refuse source files larger than this many bytes")

func (Module) MaxInputBytes(
	loader configs.Loader,
) MaxInputBytes {
	n := int64(math.MaxInt64)

	// flag
	if *maxInputBytesFlag > 0 {
		n = min(n, *maxInputBytesFlag)
	}

	// config
	if v := configs.First[int64](loader, "max_input_bytes"); v > 0 {
		n = min(n, v)
	}

	return MaxInputBytes(n)
}
