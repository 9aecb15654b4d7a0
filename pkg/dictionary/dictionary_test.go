package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary(t *testing.T) *Dictionary {
	t.Helper()

	dict := New("radius")
	require.NoError(t, dict.Load(&File{
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "User-Name", DataType: DataTypeString},
			{ID: 2, Name: "User-Password", DataType: DataTypeString, Encryption: EncryptionUserPassword},
			{ID: 6, Name: "Service-Type", DataType: DataTypeInteger, Values: map[string]uint32{
				"Login-User":  1,
				"Framed-User": 2,
			}},
			{ID: 8, Name: "Framed-IP-Address", DataType: DataTypeIPAddr},
			{ID: 241, Name: "Extended-Attribute-1", DataType: DataTypeTLV, Attributes: []*AttributeDefinition{
				{ID: 1, Name: "Frag-Status", DataType: DataTypeInteger},
				{ID: 2, Name: "Proxy-State-Length", DataType: DataTypeInteger},
			}},
			{ID: 245, Name: "Tunnel-Group", DataType: DataTypeGroup},
		},
		Vendors: []*VendorDefinition{
			{ID: 14122, Name: "WISPr", Attributes: []*AttributeDefinition{
				{ID: 1, Name: "WISPr-Location-ID", DataType: DataTypeString},
				{ID: 2, Name: "WISPr-Location-Name", DataType: DataTypeString},
			}},
		},
	}))

	return dict
}

func TestNew(t *testing.T) {
	dict := New("radius")

	assert.Equal(t, "radius", dict.Name())
	assert.False(t, dict.IsInternal())
	assert.True(t, dict.Root().IsRoot())
	assert.False(t, dict.Root().IsLeaf())
	assert.Same(t, dict, dict.Root().Dictionary())

	internal := NewInternal("freeradius")
	assert.True(t, internal.IsInternal())
}

func TestDictionaryLoad(t *testing.T) {
	dict := testDictionary(t)

	attr, ok := dict.AttributeByName("user-name")
	require.True(t, ok)
	assert.Equal(t, "User-Name", attr.Name)
	assert.True(t, attr.IsTopLevel())
	assert.Equal(t, "1", attr.OIDString())

	vsa, ok := dict.VendorSpecific()
	require.True(t, ok)
	assert.Equal(t, DataTypeVSA, vsa.DataType)

	wispr, ok := dict.AttributeByName("WISPr-Location-Name")
	require.True(t, ok)
	assert.Equal(t, []uint32{26, 14122, 2}, wispr.OID())
	assert.False(t, wispr.IsTopLevel())
	assert.True(t, wispr.IsDescendantOf(vsa))

	// Children of a tlv are not indexed dictionary-wide
	_, ok = dict.AttributeByName("Frag-Status")
	assert.False(t, ok)

	attr, ok = dict.AttributeByOID("241.1")
	require.True(t, ok)
	assert.Equal(t, "Frag-Status", attr.Name)
}

func TestDictionaryAddAttribute(t *testing.T) {
	tests := []struct {
		name    string
		parent  string
		def     *AttributeDefinition
		wantErr bool
	}{
		{
			name: "valid attribute",
			def:  &AttributeDefinition{ID: 4, Name: "NAS-IP-Address", DataType: DataTypeIPAddr},
		},
		{
			name:    "nil definition",
			def:     nil,
			wantErr: true,
		},
		{
			name:    "empty name",
			def:     &AttributeDefinition{ID: 4, DataType: DataTypeIPAddr},
			wantErr: true,
		},
		{
			name:    "name with dot",
			def:     &AttributeDefinition{ID: 4, Name: "NAS.IP", DataType: DataTypeIPAddr},
			wantErr: true,
		},
		{
			name:    "invalid data type",
			def:     &AttributeDefinition{ID: 4, Name: "NAS-IP-Address", DataType: "bogus"},
			wantErr: true,
		},
		{
			name:    "duplicate id",
			def:     &AttributeDefinition{ID: 1, Name: "Other-Name", DataType: DataTypeString},
			wantErr: true,
		},
		{
			name:    "duplicate name",
			def:     &AttributeDefinition{ID: 99, Name: "USER-NAME", DataType: DataTypeString},
			wantErr: true,
		},
		{
			name:    "duplicate vendor attribute name",
			def:     &AttributeDefinition{ID: 99, Name: "WISPr-Location-ID", DataType: DataTypeString},
			wantErr: true,
		},
		{
			name:    "leaf parent",
			parent:  "User-Name",
			def:     &AttributeDefinition{ID: 1, Name: "Sub", DataType: DataTypeString},
			wantErr: true,
		},
		{
			name: "leaf with children",
			def: &AttributeDefinition{ID: 99, Name: "Broken", DataType: DataTypeString, Attributes: []*AttributeDefinition{
				{ID: 1, Name: "Sub", DataType: DataTypeString},
			}},
			wantErr: true,
		},
		{
			name:    "vendor outside vsa",
			def:     &AttributeDefinition{ID: 99, Name: "Vendor", DataType: DataTypeVendor},
			wantErr: true,
		},
		{
			name:   "tlv child may reuse a top-level name",
			parent: "Extended-Attribute-1",
			def:    &AttributeDefinition{ID: 3, Name: "User-Name", DataType: DataTypeString},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := testDictionary(t)

			var parent *Attribute
			if tt.parent != "" {
				var ok bool
				parent, ok = dict.AttributeByName(tt.parent)
				require.True(t, ok)
			}

			attr, err := dict.AddAttribute(parent, tt.def)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.def.Name, attr.Name)
		})
	}
}

func TestDictionaryAddVendor(t *testing.T) {
	tests := []struct {
		name    string
		vendor  *VendorDefinition
		wantErr bool
	}{
		{
			name:   "valid vendor",
			vendor: &VendorDefinition{ID: 14988, Name: "Mikrotik"},
		},
		{
			name:    "nil vendor",
			vendor:  nil,
			wantErr: true,
		},
		{
			name:    "zero ID",
			vendor:  &VendorDefinition{Name: "Invalid"},
			wantErr: true,
		},
		{
			name:    "duplicate ID",
			vendor:  &VendorDefinition{ID: 14122, Name: "Other"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := testDictionary(t)

			err := dict.AddVendor(tt.vendor)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDictionaryAddVendorCreatesVendorSpecific(t *testing.T) {
	dict := New("radius")

	_, ok := dict.VendorSpecific()
	assert.False(t, ok)

	require.NoError(t, dict.AddVendor(&VendorDefinition{ID: 9, Name: "Cisco", Attributes: []*AttributeDefinition{
		{ID: 1, Name: "Cisco-AVPair", DataType: DataTypeString},
	}}))

	vsa, ok := dict.VendorSpecific()
	require.True(t, ok)
	assert.Equal(t, "Vendor-Specific", vsa.Name)

	attr, ok := dict.AttributeByName("Cisco-AVPair")
	require.True(t, ok)
	assert.Equal(t, "26.9.1", attr.OIDString())
}

func TestDictionaryMerge(t *testing.T) {
	dict := testDictionary(t)

	other := New("radius")
	require.NoError(t, other.Load(&File{
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "User-Name", DataType: DataTypeString},
			{ID: 4, Name: "NAS-IP-Address", DataType: DataTypeIPAddr},
		},
		Vendors: []*VendorDefinition{
			{ID: 14122, Name: "WISPr", Attributes: []*AttributeDefinition{
				{ID: 3, Name: "WISPr-Logoff-URL", DataType: DataTypeString},
			}},
		},
	}))

	require.NoError(t, dict.Merge(other))

	_, ok := dict.AttributeByName("NAS-IP-Address")
	assert.True(t, ok)

	attr, ok := dict.AttributeByName("WISPr-Logoff-URL")
	require.True(t, ok)
	assert.Equal(t, "26.14122.3", attr.OIDString())

	conflict := New("radius")
	require.NoError(t, conflict.Load(&File{
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Login-Name", DataType: DataTypeString},
		},
	}))
	assert.Error(t, dict.Merge(conflict))
}

func TestAttributeValues(t *testing.T) {
	dict := testDictionary(t)

	attr, ok := dict.AttributeByName("Service-Type")
	require.True(t, ok)

	name, ok := attr.ValueName(2)
	assert.True(t, ok)
	assert.Equal(t, "Framed-User", name)

	_, ok = attr.ValueName(42)
	assert.False(t, ok)

	v, ok := attr.ValueByName("login-user")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), v)
}

func TestAttributeRelativeOID(t *testing.T) {
	dict := testDictionary(t)

	vsa, _ := dict.VendorSpecific()
	attr, ok := dict.AttributeByName("WISPr-Location-ID")
	require.True(t, ok)

	rel, ok := attr.RelativeOID(vsa)
	assert.True(t, ok)
	assert.Equal(t, "14122.1", rel)

	rel, ok = attr.RelativeOID(dict.Root())
	assert.True(t, ok)
	assert.Equal(t, "26.14122.1", rel)

	userName, _ := dict.AttributeByName("User-Name")
	_, ok = attr.RelativeOID(userName)
	assert.False(t, ok)
}

func TestSame(t *testing.T) {
	dict := testDictionary(t)

	userName, _ := dict.AttributeByName("User-Name")
	assert.True(t, Same(userName, userName))

	a, err := UnknownFromOID(dict.Root(), "26.9999.1")
	require.NoError(t, err)
	b, err := UnknownFromOID(dict.Root(), "26.9999.1")
	require.NoError(t, err)
	c, err := UnknownFromOID(dict.Root(), "26.9999.2")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.True(t, Same(a, b))
	assert.False(t, Same(a, c))
	assert.False(t, Same(a, nil))
	assert.False(t, Same(userName, a))
}
