// SPDX-License-Identifier: MIT

package chain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint is a BLAKE3-256 digest of canonical strata.
type Fingerprint [32]byte

// String returns the lowercase hex encoding.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Fingerprint hashes the strata in canonical order: for each dimension its
// face count, then each face's labels, all as little-endian uint64. Two
// inputs that close to the same complex hash identically regardless of face
// order or label order inside faces.
func (s Strata) Fingerprint() Fingerprint {
	h := blake3.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:]) // hash.Hash writes never fail
	}

	put(uint64(len(s)))
	for _, st := range s {
		put(uint64(st.Len()))
		for _, f := range st.faces {
			for _, v := range f {
				put(uint64(v))
			}
		}
	}

	var out Fingerprint
	copy(out[:], h.Sum(nil))

	return out
}
