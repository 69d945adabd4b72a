package types

import (
	"io"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/bin"
)

type EventType uint8

const (
	EventTagCallHistory EventType = iota + 1
	EventTagContract
)

// Event is a record of a call or a contract notification in the unit of work
type Event struct {
	Index  uint16
	Type   EventType
	Result []byte
}

func (e *Event) Clone() *Event {
	return &Event{
		Index:  e.Index,
		Type:   e.Type,
		Result: e.Result,
	}
}

func (e *Event) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint16(w, e.Index); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint8(w, uint8(e.Type)); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, e.Result); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (e *Event) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint16(r, &e.Index); err != nil {
		return sum, err
	}
	if v, sum, err := sr.GetUint8(r); err != nil {
		return sum, err
	} else {
		e.Type = EventType(v)
	}
	if sum, err := sr.Bytes(r, &e.Result); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// MethodCallEvent is the call history payload of the EventTagCallHistory event
type MethodCallEvent struct {
	From   common.Address
	To     common.Address
	Method string
	Args   []interface{}
	Result []interface{}
	Error  string
}

func (s *MethodCallEvent) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.From); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.To); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Method); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, bin.TypeWriteAll(s.Args...)); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, bin.TypeWriteAll(s.Result...)); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Error); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *MethodCallEvent) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.From); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.To); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Method); err != nil {
		return sum, err
	}
	if bs, sum, err := sr.GetBytes(r); err != nil {
		return sum, err
	} else if vs, err := bin.TypeReadAll(bs, -1); err != nil {
		return sum, err
	} else {
		s.Args = vs
	}
	if bs, sum, err := sr.GetBytes(r); err != nil {
		return sum, err
	} else if vs, err := bin.TypeReadAll(bs, -1); err != nil {
		return sum, err
	} else {
		s.Result = vs
	}
	if sum, err := sr.String(r, &s.Error); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// ContractEvent is the notification payload of the EventTagContract event
type ContractEvent struct {
	From common.Address
	Name string
	Args []interface{}
}

func (s *ContractEvent) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.From); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, bin.TypeWriteAll(s.Args...)); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ContractEvent) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.From); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if bs, sum, err := sr.GetBytes(r); err != nil {
		return sum, err
	} else if vs, err := bin.TypeReadAll(bs, -1); err != nil {
		return sum, err
	} else {
		s.Args = vs
	}
	return sr.Sum(), nil
}
