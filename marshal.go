// Copyright 2012 Andreas Louca, 2013 Sonia Hamilton. All rights reserved.  Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cber

import (
	"fmt"
	"strconv"
)

//
// Remaining globals and definitions located here.
//

// SnmpVersion is the message version field.
type SnmpVersion uint32

const (
	Version1  SnmpVersion = 0x0
	Version2c SnmpVersion = 0x1
)

func (s SnmpVersion) String() string {
	switch s {
	case Version1:
		return "1"
	case Version2c:
		return "2c"
	default:
		return strconv.FormatUint(uint64(s), 10)
	}
}

// Asn1BER is the tag of a universal BER value.
type Asn1BER byte

const (
	Integer          Asn1BER = 0x02
	OctetString      Asn1BER = 0x04
	Null             Asn1BER = 0x05
	ObjectIdentifier Asn1BER = 0x06
	Sequence         Asn1BER = 0x30
)

func (a Asn1BER) String() string {
	switch a {
	case Integer:
		return "Integer"
	case OctetString:
		return "OctetString"
	case Null:
		return "Null"
	case ObjectIdentifier:
		return "ObjectIdentifier"
	case Sequence:
		return "Sequence"
	default:
		return fmt.Sprintf("Asn1BER(%#x)", byte(a))
	}
}

// PDUType is the context tag that both names and envelopes an SNMP PDU.
type PDUType byte

const (
	GetRequest     PDUType = 0xa0
	GetNextRequest PDUType = 0xa1
	GetResponse    PDUType = 0xa2
	SetRequest     PDUType = 0xa3
	Trap           PDUType = 0xa4 // recognised, never encoded or decoded
)

func (p PDUType) String() string {
	switch p {
	case GetRequest:
		return "GetRequest"
	case GetNextRequest:
		return "GetNextRequest"
	case GetResponse:
		return "GetResponse"
	case SetRequest:
		return "SetRequest"
	case Trap:
		return "Trap"
	default:
		return fmt.Sprintf("PDUType(%#x)", byte(p))
	}
}

// Supported reports whether p is one of the request/response PDUs this
// package encodes and decodes.
func (p PDUType) Supported() bool {
	switch p {
	case GetRequest, GetNextRequest, GetResponse, SetRequest:
		return true
	}
	return false
}

// SnmpPacket is a whole v1/v2c message: the header fields and the varbinds.
type SnmpPacket struct {
	Version    SnmpVersion
	Community  string
	PDUType    PDUType
	RequestID  uint32
	Error      uint32
	ErrorIndex uint32
	Variables  []VarBind
	Logger     Logger
}

// VarBind is one name/value pair of a PDU.
type VarBind struct {
	// Name is the OID being read or written.
	Name OID

	// Value is an Integer, OctetString or Null.
	Value Value
}

func (v VarBind) String() string {
	return v.Name.String() + " = " + v.Value.String()
}

// SafeString describes the packet for logging.
func (packet *SnmpPacket) SafeString() string {
	return fmt.Sprintf("Version:%s, Community:%s, PDUType:%s, RequestID:%d, Error:%d, ErrorIndex:%d, Variables:%v",
		packet.Version,
		packet.Community,
		packet.PDUType,
		packet.RequestID,
		packet.Error,
		packet.ErrorIndex,
		packet.Variables,
	)
}

// -- Marshalling Logic --------------------------------------------------------

// MarshalTo encodes the packet into e. Everything is written back to front:
// varbinds last to first, then the PDU header, then the message header, so
// each length is known when its tag is written. On error the encoder holds
// a partial message and should be Reset.
func (packet *SnmpPacket) MarshalTo(e *Encoder) error {
	if !packet.PDUType.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedPduType, packet.PDUType)
	}
	mark := e.Len()

	if err := packet.marshalPDU(e); err != nil {
		return err
	}

	// community, then version, as they precede the pdu
	if err := e.WriteString(packet.Community); err != nil {
		return fmt.Errorf("unable to marshal community: %w", err)
	}
	if err := e.WriteInt(uint32(packet.Version)); err != nil {
		return fmt.Errorf("unable to marshal version: %w", err)
	}

	if err := e.wrap(byte(Sequence), mark); err != nil {
		return fmt.Errorf("unable to marshal message header: %w", err)
	}
	packet.Logger.Printf("marshalMsg: %d bytes", e.Len()-mark)
	return nil
}

// marshal a PDU
func (packet *SnmpPacket) marshalPDU(e *Encoder) error {
	mark := e.Len()

	if err := packet.marshalVBL(e); err != nil {
		return err
	}

	if err := e.WriteInt(packet.ErrorIndex); err != nil {
		return fmt.Errorf("unable to marshal error index: %w", err)
	}
	if err := e.WriteInt(packet.Error); err != nil {
		return fmt.Errorf("unable to marshal error status: %w", err)
	}
	if err := e.WriteInt(packet.RequestID); err != nil {
		return fmt.Errorf("unable to marshal request id: %w", err)
	}

	// the PDU tag doubles as the envelope, no SEQUENCE of its own
	if err := e.wrap(byte(packet.PDUType), mark); err != nil {
		return fmt.Errorf("unable to marshal %s header: %w", packet.PDUType, err)
	}
	packet.Logger.Printf("marshalPDU: %s request id %d, %d bytes", packet.PDUType, packet.RequestID, e.Len()-mark)
	return nil
}

// marshal a varbind list
func (packet *SnmpPacket) marshalVBL(e *Encoder) error {
	mark := e.Len()
	for i := len(packet.Variables) - 1; i >= 0; i-- {
		if err := marshalVarbind(e, &packet.Variables[i]); err != nil {
			return fmt.Errorf("unable to marshal varbind %d: %w", i, err)
		}
		if packet.Logger.Enabled() {
			packet.Logger.Printf("marshalVarbind: %d %s", i, packet.Variables[i])
		}
	}
	if err := e.wrap(byte(Sequence), mark); err != nil {
		return fmt.Errorf("unable to marshal varbind list header: %w", err)
	}
	return nil
}

// marshal a varbind
func marshalVarbind(e *Encoder, vb *VarBind) error {
	mark := e.Len()

	switch vb.Value.Type {
	case Integer, OctetString, Null:
		if err := e.WriteValue(vb.Value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValueType, vb.Value.Type)
	}

	if err := e.WriteOID(vb.Name); err != nil {
		return err
	}

	return e.wrap(byte(Sequence), mark)
}
