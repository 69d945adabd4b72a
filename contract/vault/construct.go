package vault

import (
	"io"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/bin"
)

type VaultContractConstruction struct {
	Gov  common.Address
	Farm common.Address
	Want common.Address

	FeeFundAddress common.Address
}

func (s *VaultContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Gov); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Farm); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Want); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.FeeFundAddress); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *VaultContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Gov); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Farm); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Want); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.FeeFundAddress); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
