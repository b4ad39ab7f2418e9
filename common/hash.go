package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns SHA256(b).
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}

// Sha2Sum returns SHA256(SHA256(b)).
func Sha2Sum(b []byte) (out [32]byte) {
	s := sha256.New()
	s.Write(b)
	tmp := s.Sum(nil)
	s.Reset()
	s.Write(tmp)
	copy(out[:], s.Sum(nil))
	return
}

// Rimp160AfterSha256 returns RIPEMD160(SHA256(b)).
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	sha := sha256.New()
	sha.Write(b)
	rim := ripemd160.New()
	rim.Write(sha.Sum(nil)[:])
	copy(out[:], rim.Sum(nil))
	return
}

// ToHex returns the hex representation of b, prefixed with "0x".
func ToHex(b []byte) string {
	hexb := hex.EncodeToString(b)
	if len(hexb) == 0 {
		return ""
	}
	return "0x" + hexb
}

// FromHex decodes a hex string, with or without the "0x" prefix.
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		return hex.DecodeString(s)
	}
	return []byte{}, nil
}

// IsHex checks whether s is a valid hex string.
func IsHex(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
