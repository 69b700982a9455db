// Package signature implements the reference network's EdDSA variant:
// Ed25519 (RFC 8032) with Blake2b-512 substituted for SHA-512 in both the
// key-expansion and challenge hashes. See ed25519blake2b.go for the scheme
// and curve.go for the underlying edwards25519 arithmetic.
package signature

import (
	"fmt"

	"github.com/nanoblock/nanogo/pkg/types"
)

// SignatureLength is the byte length of an Ed25519-Blake2b signature.
const SignatureLength = 64

// Service signs and verifies block hashes. The zero value is ready to use.
type Service struct{}

// NewService returns a ready-to-use signature service.
func NewService() *Service {
	return &Service{}
}

// Sign signs data with privateKey.
func (s *Service) Sign(data, privateKey []byte) ([]byte, error) {
	sig, err := Sign(privateKey, data)
	if err != nil {
		return nil, fmt.Errorf("signature: sign: %w", err)
	}
	return sig, nil
}

// Verify reports whether signature is valid for data under publicKey.
func (s *Service) Verify(data, signature, publicKey []byte) bool {
	return Verify(publicKey, data, signature)
}

// SignBatch signs each element of dataList with privateKey.
func (s *Service) SignBatch(dataList [][]byte, privateKey []byte) ([][]byte, error) {
	out := make([][]byte, len(dataList))
	for i, d := range dataList {
		sig, err := s.Sign(d, privateKey)
		if err != nil {
			return nil, fmt.Errorf("signature: batch item %d: %w", i, err)
		}
		out[i] = sig
	}
	return out, nil
}

// VerifyBatch verifies each (data, signature, publicKey) triple
// independently, returning one bool per input.
func (s *Service) VerifyBatch(dataList, signatureList, publicKeyList [][]byte) ([]bool, error) {
	if len(dataList) != len(signatureList) || len(dataList) != len(publicKeyList) {
		return nil, fmt.Errorf("signature: batch length mismatch: %w", types.ErrInvalidSignature)
	}
	out := make([]bool, len(dataList))
	for i := range dataList {
		out[i] = s.Verify(dataList[i], signatureList[i], publicKeyList[i])
	}
	return out, nil
}

// ValidateSignature reports whether signature has the correct length for
// an Ed25519 signature.
func (s *Service) ValidateSignature(signature []byte) error {
	if len(signature) != SignatureLength {
		return fmt.Errorf("signature: expected %d bytes, got %d: %w", SignatureLength, len(signature), types.ErrInvalidSignature)
	}
	return nil
}
