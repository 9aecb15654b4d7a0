package dictionaries

import "github.com/vitalvas/radpair/pkg/dictionary"

// StandardRFCAttributes contains the RFC 2865, 2866, 2869 and 3162 attributes
// plus the first RFC 6929 extended attribute space.
var StandardRFCAttributes = []*dictionary.AttributeDefinition{
	// RFC 2865
	{ID: 1, Name: "User-Name", DataType: dictionary.DataTypeString},
	{ID: 2, Name: "User-Password", DataType: dictionary.DataTypeString, Encryption: dictionary.EncryptionUserPassword},
	{ID: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets},
	{ID: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},
	{
		ID:       6,
		Name:     "Service-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User":              1,
			"Framed-User":             2,
			"Callback-Login-User":     3,
			"Callback-Framed-User":    4,
			"Outbound-User":           5,
			"Administrative-User":     6,
			"NAS-Prompt-User":         7,
			"Authenticate-Only":       8,
			"Callback-NAS-Prompt":     9,
			"Call-Check":              10,
			"Callback-Administrative": 11,
			"Authorize-Only":          17,
		},
	},
	{
		ID:       7,
		Name:     "Framed-Protocol",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP":          1,
			"SLIP":         2,
			"ARAP":         3,
			"Gandalf-SLML": 4,
		},
	},
	{ID: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 9, Name: "Framed-IP-Netmask", DataType: dictionary.DataTypeIPAddr},
	{ID: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},
	{ID: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger},
	{ID: 14, Name: "Login-IP-Host", DataType: dictionary.DataTypeIPAddr},
	{ID: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},
	{ID: 19, Name: "Callback-Number", DataType: dictionary.DataTypeString},
	{ID: 22, Name: "Framed-Route", DataType: dictionary.DataTypeString},
	{ID: 24, Name: "State", DataType: dictionary.DataTypeOctets},
	{ID: 25, Name: "Class", DataType: dictionary.DataTypeOctets},
	{ID: dictionary.AttributeVendorSpecific, Name: "Vendor-Specific", DataType: dictionary.DataTypeVSA},
	{ID: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},
	{ID: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},
	{
		ID:       29,
		Name:     "Termination-Action",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default":        0,
			"RADIUS-Request": 1,
		},
	},
	{ID: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},
	{ID: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},
	{ID: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},
	{
		ID:       61,
		Name:     "NAS-Port-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Async":           0,
			"Sync":            1,
			"ISDN":            2,
			"Virtual":         5,
			"Ethernet":        15,
			"Wireless-802.11": 19,
		},
	},
	{ID: 62, Name: "Port-Limit", DataType: dictionary.DataTypeInteger},

	// RFC 2866
	{
		ID:       40,
		Name:     "Acct-Status-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Start":          1,
			"Stop":           2,
			"Interim-Update": 3,
			"Accounting-On":  7,
			"Accounting-Off": 8,
		},
	},
	{ID: 41, Name: "Acct-Delay-Time", DataType: dictionary.DataTypeInteger},
	{ID: 42, Name: "Acct-Input-Octets", DataType: dictionary.DataTypeInteger},
	{ID: 43, Name: "Acct-Output-Octets", DataType: dictionary.DataTypeInteger},
	{ID: 44, Name: "Acct-Session-Id", DataType: dictionary.DataTypeString},
	{ID: 46, Name: "Acct-Session-Time", DataType: dictionary.DataTypeInteger},
	{ID: 47, Name: "Acct-Input-Packets", DataType: dictionary.DataTypeInteger},
	{ID: 48, Name: "Acct-Output-Packets", DataType: dictionary.DataTypeInteger},
	{
		ID:       49,
		Name:     "Acct-Terminate-Cause",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"User-Request":    1,
			"Lost-Carrier":    2,
			"Lost-Service":    3,
			"Idle-Timeout":    4,
			"Session-Timeout": 5,
			"Admin-Reset":     6,
			"NAS-Reboot":      11,
		},
	},
	{ID: 50, Name: "Acct-Multi-Session-Id", DataType: dictionary.DataTypeString},
	{ID: 51, Name: "Acct-Link-Count", DataType: dictionary.DataTypeInteger},

	// RFC 2869
	{ID: 52, Name: "Acct-Input-Gigawords", DataType: dictionary.DataTypeInteger},
	{ID: 53, Name: "Acct-Output-Gigawords", DataType: dictionary.DataTypeInteger},
	{ID: 55, Name: "Event-Timestamp", DataType: dictionary.DataTypeDate},
	{ID: 77, Name: "Connect-Info", DataType: dictionary.DataTypeString},
	{ID: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},
	{ID: 80, Name: "Message-Authenticator", DataType: dictionary.DataTypeOctets},
	{ID: 85, Name: "Acct-Interim-Interval", DataType: dictionary.DataTypeInteger},
	{ID: 87, Name: "NAS-Port-Id", DataType: dictionary.DataTypeString},
	{ID: 88, Name: "Framed-Pool", DataType: dictionary.DataTypeString},

	// RFC 3162
	{ID: 95, Name: "NAS-IPv6-Address", DataType: dictionary.DataTypeIPv6Addr},
	{ID: 96, Name: "Framed-Interface-Id", DataType: dictionary.DataTypeIfID},
	{ID: 97, Name: "Framed-IPv6-Prefix", DataType: dictionary.DataTypeIPv6Prefix},
	{ID: 98, Name: "Login-IPv6-Host", DataType: dictionary.DataTypeIPv6Addr},

	// RFC 4818
	{ID: 123, Name: "Delegated-IPv6-Prefix", DataType: dictionary.DataTypeIPv6Prefix},

	// RFC 6929
	{
		ID:       241,
		Name:     "Extended-Attribute-1",
		DataType: dictionary.DataTypeTLV,
		Attributes: []*dictionary.AttributeDefinition{
			{ID: 1, Name: "Frag-Status", DataType: dictionary.DataTypeInteger, Values: map[string]uint32{
				"Reserved":                0,
				"Fragmentation-Supported": 1,
				"More-Data-Pending":       2,
				"More-Data-Request":       3,
			}},
			{ID: 2, Name: "Proxy-State-Length", DataType: dictionary.DataTypeInteger},
			{ID: 3, Name: "Response-Length", DataType: dictionary.DataTypeInteger},
			{ID: 4, Name: "Original-Packet-Code", DataType: dictionary.DataTypeInteger},
		},
	},
}
