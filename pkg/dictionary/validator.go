package dictionary

import (
	"fmt"
	"sort"
	"unicode"
)

// ValidationLevel defines the severity level of validation issues
type ValidationLevel int

const (
	ValidationLevelInfo ValidationLevel = iota
	ValidationLevelWarning
	ValidationLevelError
)

// String returns the string representation of the validation level
func (vl ValidationLevel) String() string {
	switch vl {
	case ValidationLevelInfo:
		return "INFO"
	case ValidationLevelWarning:
		return "WARNING"
	case ValidationLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ValidationIssue represents a validation issue
type ValidationIssue struct {
	Level    ValidationLevel
	Code     string
	Message  string
	Location string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s %s %s: %s", i.Level, i.Code, i.Location, i.Message)
}

// ValidationSummary counts the issues of a result per level.
type ValidationSummary struct {
	TotalIssues    int
	InfoCount      int
	WarningCount   int
	ErrorCount     int
	AttributeCount int
	VendorCount    int
}

// ValidationResult contains the results of dictionary validation
type ValidationResult struct {
	Issues  []ValidationIssue
	Summary ValidationSummary
	IsValid bool
}

// Errors returns the issues of level Error.
func (r *ValidationResult) Errors() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Level >= ValidationLevelError {
			out = append(out, issue)
		}
	}
	return out
}

// ValidationOptions configures validation behavior
type ValidationOptions struct {
	CheckNaming bool
	CheckTypes  bool

	// StrictMode makes warnings fail validation.
	StrictMode    bool
	MaxNameLength int
}

// DefaultValidationOptions returns default validation options
func DefaultValidationOptions() *ValidationOptions {
	return &ValidationOptions{
		CheckNaming:   true,
		CheckTypes:    true,
		MaxNameLength: 64,
	}
}

// Validator lints a loaded dictionary. Loading already rejects structural
// errors; the validator reports definitions that load but cannot be used the
// way they are declared.
type Validator struct {
	options *ValidationOptions
	issues  []ValidationIssue
}

// NewValidator creates a new dictionary validator
func NewValidator(options *ValidationOptions) *Validator {
	if options == nil {
		options = DefaultValidationOptions()
	}

	return &Validator{options: options}
}

// Validate validates a dictionary and returns results
func (v *Validator) Validate(dict *Dictionary) *ValidationResult {
	v.issues = nil

	if dict == nil {
		v.addIssue(ValidationLevelError, "DICT_NULL", "dictionary is nil", "")
		return v.buildResult(nil)
	}

	if len(dict.root.children) == 0 {
		v.addIssue(ValidationLevelWarning, "DICT_EMPTY", "dictionary contains no attributes", dict.name)
	}

	for _, attr := range dict.root.children {
		v.walk(attr)
	}

	return v.buildResult(dict)
}

func (v *Validator) walk(attr *Attribute) {
	location := attr.OIDString()

	if attr.DataType == DataTypeVendor {
		v.validateVendor(attr, location)
	} else {
		v.validateAttribute(attr, location)
	}

	for _, child := range attr.children {
		v.walk(child)
	}
}

func (v *Validator) validateVendor(attr *Attribute, location string) {
	if len(attr.children) == 0 {
		v.addIssue(ValidationLevelWarning, "VENDOR_EMPTY", fmt.Sprintf("vendor %s defines no attributes", attr.Name), location)
	}
	if v.options.CheckNaming && !isValidName(attr.Name) {
		v.addIssue(ValidationLevelWarning, "VENDOR_INVALID_NAME", fmt.Sprintf("vendor name %q contains invalid characters", attr.Name), location)
	}
}

// validateAttribute validates a single attribute
func (v *Validator) validateAttribute(attr *Attribute, location string) {
	if v.options.CheckNaming {
		if !isValidName(attr.Name) {
			v.addIssue(ValidationLevelWarning, "ATTR_INVALID_NAME", fmt.Sprintf("attribute name %q contains invalid characters", attr.Name), location)
		}
		if v.options.MaxNameLength > 0 && len(attr.Name) > v.options.MaxNameLength {
			v.addIssue(ValidationLevelWarning, "ATTR_NAME_TOO_LONG", fmt.Sprintf("attribute name %s exceeds %d characters", attr.Name, v.options.MaxNameLength), location)
		}
	}

	if v.options.CheckTypes {
		v.validateTypeConstraints(attr, location)
	}

	if attr.Array {
		v.validateArrayConstraints(attr, location)
	}

	if len(attr.Values) > 0 {
		v.validateEnumerations(attr, location)
	}

	if (attr.DataType == DataTypeTLV || attr.DataType == DataTypeVSA) && len(attr.children) == 0 {
		v.addIssue(ValidationLevelInfo, "ATTR_NO_CHILDREN", fmt.Sprintf("%s attribute %s has no children", attr.DataType, attr.Name), location)
	}
}

// validateTypeConstraints checks the wire flags against the data type.
func (v *Validator) validateTypeConstraints(attr *Attribute, location string) {
	if attr.Encryption != EncryptionNone {
		switch attr.DataType {
		case DataTypeString, DataTypeOctets:
		default:
			v.addIssue(ValidationLevelError, "ATTR_ENCRYPTION_TYPE", fmt.Sprintf("encryption %s cannot apply to %s attributes", attr.Encryption, attr.DataType), location)
		}
		if !attr.IsTopLevel() && attr.Parent.DataType != DataTypeVendor {
			v.addIssue(ValidationLevelWarning, "ATTR_ENCRYPTION_NESTED", "encrypted attribute is nested in a tlv or group", location)
		}
	}

	if attr.HasTag {
		switch attr.DataType {
		case DataTypeString, DataTypeOctets, DataTypeInteger:
		default:
			v.addIssue(ValidationLevelError, "ATTR_TAG_TYPE", fmt.Sprintf("%s attributes cannot be tagged", attr.DataType), location)
		}
		if attr.Array {
			v.addIssue(ValidationLevelError, "ATTR_TAG_ARRAY", "tagged attributes cannot be arrays", location)
		}
	}
}

// validateArrayConstraints validates array-specific constraints
func (v *Validator) validateArrayConstraints(attr *Attribute, location string) {
	switch {
	case !attr.IsLeaf():
		v.addIssue(ValidationLevelError, "ATTR_ARRAY_STRUCTURAL", fmt.Sprintf("%s attributes cannot be arrays", attr.DataType), location)
	case attr.DataType.NaturalLength() == 0 && attr.Length == 0:
		v.addIssue(ValidationLevelWarning, "ATTR_ARRAY_VARIABLE", fmt.Sprintf("array of variable-length %s values", attr.DataType), location)
	}
}

// validateEnumerations validates enumeration values
func (v *Validator) validateEnumerations(attr *Attribute, location string) {
	switch attr.DataType {
	case DataTypeInteger, DataTypeByte, DataTypeShort, DataTypeInteger64:
	default:
		v.addIssue(ValidationLevelError, "ATTR_ENUM_TYPE", fmt.Sprintf("named values are not supported on %s attributes", attr.DataType), location)
		return
	}

	names := make([]string, 0, len(attr.Values))
	for name := range attr.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	limit := uint64(1)<<(8*attr.DataType.NaturalLength()) - 1
	seen := make(map[uint32]string)
	for _, name := range names {
		value := attr.Values[name]
		if existing, ok := seen[value]; ok {
			v.addIssue(ValidationLevelWarning, "ATTR_ENUM_DUPLICATE", fmt.Sprintf("value %d is named both %s and %s", value, existing, name), location)
		} else {
			seen[value] = name
		}

		if uint64(value) > limit {
			v.addIssue(ValidationLevelError, "ATTR_ENUM_RANGE", fmt.Sprintf("value %s=%d does not fit %s", name, value, attr.DataType), location)
		}
		if v.options.CheckNaming && (name == "" || !isValidName(name)) {
			v.addIssue(ValidationLevelWarning, "ATTR_ENUM_INVALID_NAME", fmt.Sprintf("value name %q contains invalid characters", name), location)
		}
	}
}

// Helper methods for validation

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func (v *Validator) addIssue(level ValidationLevel, code, message, location string) {
	v.issues = append(v.issues, ValidationIssue{
		Level:    level,
		Code:     code,
		Message:  message,
		Location: location,
	})
}

func (v *Validator) buildResult(dict *Dictionary) *ValidationResult {
	summary := ValidationSummary{TotalIssues: len(v.issues)}

	sort.SliceStable(v.issues, func(i, j int) bool {
		return v.issues[i].Level > v.issues[j].Level
	})

	for _, issue := range v.issues {
		switch issue.Level {
		case ValidationLevelInfo:
			summary.InfoCount++
		case ValidationLevelWarning:
			summary.WarningCount++
		case ValidationLevelError:
			summary.ErrorCount++
		}
	}

	if dict != nil {
		countAttributes(dict.root, &summary)
	}

	isValid := summary.ErrorCount == 0
	if v.options.StrictMode {
		isValid = isValid && summary.WarningCount == 0
	}

	return &ValidationResult{
		Issues:  v.issues,
		Summary: summary,
		IsValid: isValid,
	}
}

func countAttributes(attr *Attribute, summary *ValidationSummary) {
	for _, child := range attr.children {
		if child.DataType == DataTypeVendor {
			summary.VendorCount++
		} else {
			summary.AttributeCount++
		}
		countAttributes(child, summary)
	}
}

// QuickLint validates dict with the type checks only.
func QuickLint(dict *Dictionary) *ValidationResult {
	return NewValidator(&ValidationOptions{CheckTypes: true}).Validate(dict)
}

// StrictLint validates dict with every check and fails on warnings.
func StrictLint(dict *Dictionary) *ValidationResult {
	return NewValidator(&ValidationOptions{
		CheckNaming:   true,
		CheckTypes:    true,
		StrictMode:    true,
		MaxNameLength: 50,
	}).Validate(dict)
}

// String returns a one-line description of the result.
func (r *ValidationResult) String() string {
	return fmt.Sprintf("%d attributes, %d vendors: %d errors, %d warnings, %d info",
		r.Summary.AttributeCount, r.Summary.VendorCount,
		r.Summary.ErrorCount, r.Summary.WarningCount, r.Summary.InfoCount)
}
