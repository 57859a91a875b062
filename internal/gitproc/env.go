package gitproc

import "os"

// osEnviron is a thin indirection over os.Environ so tests can stub it.
var osEnviron = os.Environ
