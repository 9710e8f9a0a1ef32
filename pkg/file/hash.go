package file

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// CalculateHash returns the sha256 digest of everything read from r.
func CalculateHash(r io.Reader) ([]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("hash hesaplanamadı: %w", err)
	}
	return h.Sum(nil), nil
}

// HashSeeker hashes rs and rewinds it so the caller can read it again.
func HashSeeker(rs io.ReadSeeker) ([]byte, error) {
	sum, err := CalculateHash(rs)
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dosya başına alınamadı: %w", err)
	}
	return sum, nil
}
