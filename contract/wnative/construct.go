package wnative

import (
	"io"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/bin"
)

type WNativeContractConstruction struct {
	Wrapped common.Address
}

func (s *WNativeContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Address(w, s.Wrapped); err != nil {
		return sw.Sum(), err
	}
	return sw.Sum(), nil
}

func (s *WNativeContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Address(r, &s.Wrapped); err != nil {
		return sr.Sum(), err
	}
	return sr.Sum(), nil
}
