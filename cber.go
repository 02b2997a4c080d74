// Copyright 2012 Andreas Louca, 2013 Sonia Hamilton. All rights reserved.  Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cber

import "fmt"

// MaxOids is the default number of varbinds Unmarshal accepts in one message.
const MaxOids = 60

// Codec marshals and unmarshals SNMP v1/v2c messages.
type Codec struct {
	// MaxVarBinds caps the varbinds Unmarshal accepts. Zero means MaxOids.
	MaxVarBinds int

	// MaxOIDLength caps the arcs of each decoded OID. Zero means
	// MaxOIDLength.
	MaxOIDLength int

	// Logger is the Codec.Logger to use for debugging. If it wraps nil,
	// debugging output will be discarded (/dev/null). For verbose logging
	// to stdout:
	// x.Logger = NewLogger(log.New(os.Stdout, "", 0))
	Logger Logger

	// Metrics, when set, counts messages and failures.
	Metrics *Metrics
}

// Default is the Codec used by the package level helpers.
var Default = &Codec{
	MaxVarBinds:  MaxOids,
	MaxOIDLength: MaxOIDLength,
}

func (x *Codec) maxVarBinds() int {
	if x.MaxVarBinds <= 0 {
		return MaxOids
	}
	return x.MaxVarBinds
}

func (x *Codec) maxOIDLength() int {
	if x.MaxOIDLength <= 0 {
		return MaxOIDLength
	}
	return x.MaxOIDLength
}

// Marshal encodes packet into the tail of buf and returns the encoded
// message, which aliases buf. If packet has no logger of its own, the
// Codec's is used.
func (x *Codec) Marshal(buf []byte, packet *SnmpPacket) ([]byte, error) {
	p := *packet
	if !p.Logger.Enabled() {
		p.Logger = x.Logger
	}
	e := NewEncoder(buf)
	err := p.MarshalTo(e)
	x.Metrics.observe(opMarshal, p.PDUType, e.Len(), err)
	if err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes one message from the front of buf. Trailing bytes after
// the message are ignored. OCTET STRING values borrow buf; the community
// is a copy.
func (x *Codec) Unmarshal(buf []byte) (*SnmpPacket, error) {
	packet := &SnmpPacket{Logger: x.Logger}
	varbinds := make([]VarBind, x.maxVarBinds())
	if _, err := x.UnmarshalInto(buf, packet, varbinds); err != nil {
		return nil, err
	}
	// Don't pin the unused tail
	packet.Variables = packet.Variables[:len(packet.Variables):len(packet.Variables)]
	return packet, nil
}

// UnmarshalInto decodes one message from the front of buf into packet,
// storing varbinds in the caller's slice. packet.Variables is left as
// varbinds[:n] where n is the number decoded. A message carrying more than
// len(varbinds) varbinds fails with ErrCapacityExceeded. It returns the
// number of bytes the message occupied.
func (x *Codec) UnmarshalInto(buf []byte, packet *SnmpPacket, varbinds []VarBind) (int, error) {
	n, err := x.unmarshal(buf, packet, varbinds)
	x.Metrics.observe(opUnmarshal, packet.PDUType, n, err)
	if err != nil {
		x.Logger.Printf("unmarshal: %v", err)
		return 0, fmt.Errorf("unable to unmarshal message: %w", err)
	}
	return n, nil
}
