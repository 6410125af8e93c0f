package tsdate

import (
	_ "unsafe" // for go:linkname
)

//go:linkname monotime runtime.nanotime
func monotime() int64

//go:linkname walltime runtime.walltime
func walltime() (secs int64, nsec int32)
