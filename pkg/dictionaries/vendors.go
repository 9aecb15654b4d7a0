package dictionaries

import "github.com/vitalvas/radpair/pkg/dictionary"

// Vendor IDs of the bundled vendor dictionaries.
const (
	VendorWISPr    = 14122
	VendorMikrotik = 14988
)

// Vendors lists the vendor dictionaries loaded by NewDefault, in load order.
var Vendors = []*dictionary.VendorDefinition{
	wisprVendor,
	mikrotikVendor,
}

func str(id uint32, name string) *dictionary.AttributeDefinition {
	return &dictionary.AttributeDefinition{ID: id, Name: name, DataType: dictionary.DataTypeString}
}

func integer(id uint32, name string) *dictionary.AttributeDefinition {
	return &dictionary.AttributeDefinition{ID: id, Name: name, DataType: dictionary.DataTypeInteger}
}

var wisprVendor = &dictionary.VendorDefinition{
	ID:          VendorWISPr,
	Name:        "WISPr",
	Description: "Wi-Fi Alliance roaming attributes",
	Attributes: []*dictionary.AttributeDefinition{
		str(1, "WISPr-Location-Id"),
		str(2, "WISPr-Location-Name"),
		str(3, "WISPr-Logoff-URL"),
		str(4, "WISPr-Redirection-URL"),
		integer(5, "WISPr-Bandwidth-Min-Up"),
		integer(6, "WISPr-Bandwidth-Min-Down"),
		integer(7, "WISPr-Bandwidth-Max-Up"),
		integer(8, "WISPr-Bandwidth-Max-Down"),
		str(9, "WISPr-Session-Terminate-Time"),
	},
}

var mikrotikVendor = &dictionary.VendorDefinition{
	ID:          VendorMikrotik,
	Name:        "Mikrotik",
	Description: "RouterOS attributes",
	Attributes: []*dictionary.AttributeDefinition{
		integer(1, "Mikrotik-Recv-Limit"),
		integer(2, "Mikrotik-Xmit-Limit"),
		str(3, "Mikrotik-Group"),
		{
			ID:       6,
			Name:     "Mikrotik-Wireless-Enc-Algo",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"No-encryption": 0,
				"40-bit-WEP":    1,
				"104-bit-WEP":   2,
				"AES-CCM":       3,
				"TKIP":          4,
			},
		},
		str(8, "Mikrotik-Rate-Limit"),
		str(9, "Mikrotik-Realm"),
		{ID: 10, Name: "Mikrotik-Host-IP", DataType: dictionary.DataTypeIPAddr},
		str(11, "Mikrotik-Mark-Id"),
		integer(14, "Mikrotik-Recv-Limit-Gigawords"),
		integer(15, "Mikrotik-Xmit-Limit-Gigawords"),
		integer(17, "Mikrotik-Total-Limit"),
		integer(18, "Mikrotik-Total-Limit-Gigawords"),
		str(19, "Mikrotik-Address-List"),
		str(22, "Mikrotik-Delegated-IPv6-Pool"),
		integer(26, "Mikrotik-Wireless-VLANID"),
	},
}
