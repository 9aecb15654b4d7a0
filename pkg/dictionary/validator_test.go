package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationLevelString(t *testing.T) {
	tests := []struct {
		level    ValidationLevel
		expected string
	}{
		{ValidationLevelError, "ERROR"},
		{ValidationLevelWarning, "WARNING"},
		{ValidationLevelInfo, "INFO"},
		{ValidationLevel(99), "UNKNOWN"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.level.String())
		})
	}
}

func issueCodes(result *ValidationResult) []string {
	codes := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestValidatorValidDictionary(t *testing.T) {
	result := NewValidator(nil).Validate(testDictionary(t))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors())
	assert.Positive(t, result.Summary.AttributeCount)
	assert.Equal(t, 1, result.Summary.VendorCount)
}

func TestValidatorIssues(t *testing.T) {
	tests := []struct {
		name  string
		def   *AttributeDefinition
		code  string
		level ValidationLevel
	}{
		{
			name:  "encrypted integer",
			def:   &AttributeDefinition{ID: 1, Name: "Secret-Count", DataType: DataTypeInteger, Encryption: EncryptionUserPassword},
			code:  "ATTR_ENCRYPTION_TYPE",
			level: ValidationLevelError,
		},
		{
			name:  "tagged address",
			def:   &AttributeDefinition{ID: 2, Name: "Tagged-Address", DataType: DataTypeIPAddr, HasTag: true},
			code:  "ATTR_TAG_TYPE",
			level: ValidationLevelError,
		},
		{
			name:  "tagged array",
			def:   &AttributeDefinition{ID: 3, Name: "Tagged-List", DataType: DataTypeInteger, HasTag: true, Array: true},
			code:  "ATTR_TAG_ARRAY",
			level: ValidationLevelError,
		},
		{
			name:  "tlv array",
			def: &AttributeDefinition{ID: 4, Name: "Tlv-List", DataType: DataTypeTLV, Array: true, Attributes: []*AttributeDefinition{
				{ID: 1, Name: "Item", DataType: DataTypeInteger},
			}},
			code:  "ATTR_ARRAY_STRUCTURAL",
			level: ValidationLevelError,
		},
		{
			name:  "string array",
			def:   &AttributeDefinition{ID: 5, Name: "Name-List", DataType: DataTypeString, Array: true},
			code:  "ATTR_ARRAY_VARIABLE",
			level: ValidationLevelWarning,
		},
		{
			name:  "named string values",
			def:   &AttributeDefinition{ID: 6, Name: "Named-String", DataType: DataTypeString, Values: map[string]uint32{"One": 1}},
			code:  "ATTR_ENUM_TYPE",
			level: ValidationLevelError,
		},
		{
			name:  "byte value out of range",
			def:   &AttributeDefinition{ID: 7, Name: "Small", DataType: DataTypeByte, Values: map[string]uint32{"Big": 300}},
			code:  "ATTR_ENUM_RANGE",
			level: ValidationLevelError,
		},
		{
			name:  "duplicate value",
			def:   &AttributeDefinition{ID: 8, Name: "Mode", DataType: DataTypeInteger, Values: map[string]uint32{"On": 1, "Enabled": 1}},
			code:  "ATTR_ENUM_DUPLICATE",
			level: ValidationLevelWarning,
		},
		{
			name:  "odd value name",
			def:   &AttributeDefinition{ID: 9, Name: "State", DataType: DataTypeInteger, Values: map[string]uint32{"a/b": 1}},
			code:  "ATTR_ENUM_INVALID_NAME",
			level: ValidationLevelWarning,
		},
		{
			name:  "odd attribute name",
			def:   &AttributeDefinition{ID: 10, Name: "Odd/Name", DataType: DataTypeString},
			code:  "ATTR_INVALID_NAME",
			level: ValidationLevelWarning,
		},
		{
			name:  "empty tlv",
			def:   &AttributeDefinition{ID: 11, Name: "Empty-Tlv", DataType: DataTypeTLV},
			code:  "ATTR_NO_CHILDREN",
			level: ValidationLevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := New("local")
			_, err := dict.AddAttribute(nil, tt.def)
			require.NoError(t, err)

			result := NewValidator(nil).Validate(dict)
			require.Len(t, result.Issues, 1, issueCodes(result))

			issue := result.Issues[0]
			assert.Equal(t, tt.code, issue.Code)
			assert.Equal(t, tt.level, issue.Level)
			assert.Equal(t, dict.root.children[0].OIDString(), issue.Location)
			assert.Equal(t, tt.level < ValidationLevelError, result.IsValid)
		})
	}
}

func TestValidatorNestedEncryption(t *testing.T) {
	dict := New("local")
	_, err := dict.AddAttribute(nil, &AttributeDefinition{ID: 1, Name: "Outer", DataType: DataTypeTLV, Attributes: []*AttributeDefinition{
		{ID: 1, Name: "Inner-Password", DataType: DataTypeString, Encryption: EncryptionTunnelPassword},
	}})
	require.NoError(t, err)

	result := NewValidator(nil).Validate(dict)
	assert.Equal(t, []string{"ATTR_ENCRYPTION_NESTED"}, issueCodes(result))
	assert.Equal(t, "1.1", result.Issues[0].Location)
}

func TestValidatorEmpty(t *testing.T) {
	result := NewValidator(nil).Validate(New("local"))
	assert.Equal(t, []string{"DICT_EMPTY"}, issueCodes(result))
	assert.True(t, result.IsValid)

	result = NewValidator(nil).Validate(nil)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"DICT_NULL"}, issueCodes(result))
}

func TestValidatorEmptyVendor(t *testing.T) {
	dict := New("local")
	require.NoError(t, dict.AddVendor(&VendorDefinition{ID: 9, Name: "Cisco"}))

	result := NewValidator(nil).Validate(dict)
	assert.Equal(t, []string{"VENDOR_EMPTY"}, issueCodes(result))
	assert.Equal(t, "26.9", result.Issues[0].Location)
}

func TestValidatorStrictMode(t *testing.T) {
	dict := New("local")
	_, err := dict.AddAttribute(nil, &AttributeDefinition{ID: 5, Name: "Name-List", DataType: DataTypeString, Array: true})
	require.NoError(t, err)

	assert.True(t, NewValidator(nil).Validate(dict).IsValid)
	assert.False(t, StrictLint(dict).IsValid)
	assert.True(t, QuickLint(dict).IsValid)
}

func TestValidatorIssuesSorted(t *testing.T) {
	dict := New("local")
	require.NoError(t, dict.AddAttributes(nil, []*AttributeDefinition{
		{ID: 1, Name: "Empty-Tlv", DataType: DataTypeTLV},
		{ID: 2, Name: "Name-List", DataType: DataTypeString, Array: true},
		{ID: 3, Name: "Secret-Count", DataType: DataTypeInteger, Encryption: EncryptionUserPassword},
	}))

	result := NewValidator(nil).Validate(dict)
	assert.Equal(t, []string{"ATTR_ENCRYPTION_TYPE", "ATTR_ARRAY_VARIABLE", "ATTR_NO_CHILDREN"}, issueCodes(result))
	assert.Equal(t, 1, result.Summary.ErrorCount)
	assert.Equal(t, 1, result.Summary.WarningCount)
	assert.Equal(t, 1, result.Summary.InfoCount)
	assert.Equal(t, "3 attributes, 0 vendors: 1 errors, 1 warnings, 1 info", result.String())
	assert.Equal(t, "ERROR ATTR_ENCRYPTION_TYPE 3: encryption user-password cannot apply to integer attributes", result.Issues[0].String())
}
