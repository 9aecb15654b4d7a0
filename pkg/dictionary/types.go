package dictionary

// DataType represents the data type of an attribute
type DataType string

const (
	DataTypeString     DataType = "string"
	DataTypeOctets     DataType = "octets"
	DataTypeInteger    DataType = "integer"
	DataTypeByte       DataType = "byte"
	DataTypeShort      DataType = "short"
	DataTypeInteger64  DataType = "integer64"
	DataTypeIPAddr     DataType = "ipaddr"
	DataTypeDate       DataType = "date"
	DataTypeIPv6Addr   DataType = "ipv6addr"
	DataTypeIPv6Prefix DataType = "ipv6prefix"
	DataTypeIfID       DataType = "ifid"
	DataTypeABinary    DataType = "abinary"

	// Structural types. Attributes of these types hold child attributes,
	// never a scalar value.
	DataTypeTLV    DataType = "tlv"
	DataTypeGroup  DataType = "group"
	DataTypeVSA    DataType = "vsa"
	DataTypeVendor DataType = "vendor"
)

// IsLeaf reports whether attributes of this type carry a scalar value.
func (t DataType) IsLeaf() bool {
	switch t {
	case DataTypeTLV, DataTypeGroup, DataTypeVSA, DataTypeVendor:
		return false
	default:
		return true
	}
}

// NaturalLength returns the encoded size of fixed-size types, or 0 for
// variable-length and structural types.
func (t DataType) NaturalLength() int {
	switch t {
	case DataTypeByte:
		return 1
	case DataTypeShort:
		return 2
	case DataTypeInteger, DataTypeDate, DataTypeIPAddr:
		return 4
	case DataTypeInteger64, DataTypeIfID:
		return 8
	case DataTypeIPv6Addr:
		return 16
	default:
		return 0
	}
}

// IsValid reports whether t is one of the known data types.
func (t DataType) IsValid() bool {
	switch t {
	case DataTypeString, DataTypeOctets, DataTypeInteger, DataTypeByte, DataTypeShort,
		DataTypeInteger64, DataTypeIPAddr, DataTypeDate, DataTypeIPv6Addr,
		DataTypeIPv6Prefix, DataTypeIfID, DataTypeABinary,
		DataTypeTLV, DataTypeGroup, DataTypeVSA, DataTypeVendor:
		return true
	default:
		return false
	}
}

// EncryptionType represents the encryption type of an attribute
type EncryptionType string

const (
	EncryptionNone           EncryptionType = ""
	EncryptionUserPassword   EncryptionType = "user-password"
	EncryptionTunnelPassword EncryptionType = "tunnel-password"
	EncryptionAscendSecret   EncryptionType = "ascend-secret"
)

// AttributeDefinition defines an attribute as it appears in dictionary files.
// Attributes nests the children of tlv and group definitions.
//
// DataType may carry a length suffix ("octets[16]"), which is equivalent to
// setting Length. Encryption, HasTag and Array describe the wire encoding and
// are checked by Validator only.
type AttributeDefinition struct {
	ID          uint32                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	DataType    DataType               `yaml:"data_type" json:"data_type"`
	Length      int                    `yaml:"length,omitempty" json:"length,omitempty"`
	Encryption  EncryptionType         `yaml:"encryption,omitempty" json:"encryption,omitempty"`
	HasTag      bool                   `yaml:"has_tag,omitempty" json:"has_tag,omitempty"`
	Array       bool                   `yaml:"array,omitempty" json:"array,omitempty"`
	Values      map[string]uint32      `yaml:"values,omitempty" json:"values,omitempty"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []*AttributeDefinition `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// VendorDefinition defines a vendor and its attributes
type VendorDefinition struct {
	ID          uint32                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}

// File is the on-disk layout of a dictionary.
type File struct {
	Name       string                 `yaml:"name" json:"name"`
	Internal   bool                   `yaml:"internal,omitempty" json:"internal,omitempty"`
	Attributes []*AttributeDefinition `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Vendors    []*VendorDefinition    `yaml:"vendors,omitempty" json:"vendors,omitempty"`
}

const (
	// AttributeVendorSpecific is the id of the Vendor-Specific attribute (RFC 2865 Section 5.26)
	AttributeVendorSpecific = 26

	// FallThroughID is the id of the internal Fall-Through attribute.
	// Merging never moves a top-level attribute with this id.
	FallThroughID = 500

	// MaxNameLength bounds attribute names accepted by the parser.
	MaxNameLength = 128

	// MaxValueLength is the largest value a single attribute can carry.
	MaxValueLength = 253
)
