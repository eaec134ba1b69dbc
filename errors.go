package blake2s

import "fmt"

// ParamError indicates a construction parameter outside the algorithm's
// limits. It is the only error this package produces: once New has accepted
// the parameters, writing and finalizing a Digest cannot fail.
type ParamError struct {
	Param string // "digest size", "key length", "salt length" or "personalization length"
	Size  int
	Max   int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("blake2s: invalid %s %d, max %d", e.Param, e.Size, e.Max)
}
