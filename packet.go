// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import "fmt"

// GenPacket encodes a request for oids, each bound to NULL, into the tail
// of buf and returns the message.
func GenPacket(buf []byte, community string, version SnmpVersion, reqType PDUType, requestID uint32, oids []string) ([]byte, error) {
	if len(oids) > MaxOids {
		return nil, fmt.Errorf("oid count (%d) is greater than MaxOids (%d)", len(oids), MaxOids)
	}
	vbs := make([]VarBind, 0, len(oids))
	for _, s := range oids {
		oid, err := ParseOID(s)
		if err != nil {
			return nil, err
		}
		vbs = append(vbs, VarBind{Name: oid, Value: NullValue()})
	}

	// build up SnmpPacket
	packetOut := &SnmpPacket{
		Community: community,
		PDUType:   reqType,
		Version:   version,
		RequestID: requestID,
		Variables: vbs,
	}
	return Default.Marshal(buf, packetOut)
}

// GenSetPacket encodes a SetRequest binding oid to value.
func GenSetPacket(buf []byte, community string, version SnmpVersion, requestID uint32, oid string, value Value) ([]byte, error) {
	name, err := ParseOID(oid)
	if err != nil {
		return nil, err
	}
	packetOut := &SnmpPacket{
		Community: community,
		PDUType:   SetRequest,
		Version:   version,
		RequestID: requestID,
		Variables: []VarBind{{Name: name, Value: value}},
	}
	return Default.Marshal(buf, packetOut)
}
