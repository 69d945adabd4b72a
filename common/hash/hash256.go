package hash

import (
	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hash256 is the [32]byte with methods
type Hash256 = ecommon.Hash

// Hash returns the keccak256 hash value of the data
func Hash(data []byte) Hash256 {
	return crypto.Keccak256Hash(data)
}

// DoubleHash returns the keccak256 hash value twice of the data
func DoubleHash(data []byte) Hash256 {
	h := crypto.Keccak256(data)
	return crypto.Keccak256Hash(h)
}

// Hashes returns the result of Hash(h1+'h'+h2+'h'+...)
func Hashes(hs ...Hash256) Hash256 {
	data := make([]byte, (len(hs))*33)
	idx := 0
	for _, h := range hs {
		copy(data[idx:], h[:])
		idx += 32
		data[idx] = 'h'
		idx++
	}
	return Hash(data)
}

// HexToHash returns the Hash256 of the hex string
func HexToHash(s string) Hash256 {
	return ecommon.HexToHash(s)
}
