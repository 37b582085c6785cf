package selftest

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Vector is a single golden end-to-end test case, serialized in
// decimal/hex text so it survives a msgpack round trip independent of
// this package's in-memory BigInt representation. Op names which
// operation Input feeds (see the Op* constants); a caller that only
// wants a textual round-trip fixture may leave Op at its zero value.
type Vector struct {
	Name     string `msgpack:"name"`
	Op       string `msgpack:"op"`
	Input    string `msgpack:"input"`
	Radix    int    `msgpack:"radix"`
	Expected string `msgpack:"expected"`
}

// Operation names a Vector's Op may take.
const (
	OpPow3       = "pow3"        // Input is the exponent; expected is 3^Input.
	OpIntegerSqrt = "integer_sqrt" // Input is n; expected is floor(sqrt(n)).
	OpNextPrime  = "next_prime"  // Input is the search start; expected is NextPrime(Input), which is > it.
)

// LoadVectors decodes a msgpack-encoded golden vector file.
func LoadVectors(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vectors []Vector
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

// SaveVectors encodes vectors to path as msgpack, creating or
// truncating the file.
func SaveVectors(path string, vectors []Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := msgpack.NewEncoder(f)
	return enc.Encode(vectors)
}

// BuiltinVectors returns the end-to-end scenarios from the algebraic
// law and scenario suite as golden vectors, usable as a seed file or
// as the default set when a caller has not configured one of its own.
func BuiltinVectors() []Vector {
	return []Vector{
		{
			Name:     "3^300 base16",
			Op:       OpPow3,
			Input:    "300",
			Radix:    16,
			Expected: "B39CFFF485A5DBF4D6AAE030B91BFB0EC6BBA389CD8D7F85BBA3985C19C5E24E40C543A123C6E028A873E9E3874E1B4623A44BE39B34E67DC5C2671",
		},
		{
			Name:     "integer sqrt of a 65-digit square",
			Op:       OpIntegerSqrt,
			Input:    "16342093704794905017200815921831331498602310292448679875661939076",
			Radix:    10,
			Expected: "127836198726318927639187263981726",
		},
		{
			Name:     "next prime above 2^124",
			Op:       OpNextPrime,
			Input:    "10000000000000000000000000000000",
			Radix:    16,
			Expected: "10000000000000000000000000000043",
		},
	}
}
