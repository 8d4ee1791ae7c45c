// Package hash provides the 64-bit hash used for schema fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
