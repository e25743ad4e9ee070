package pipecodec

import (
	"fmt"
	"strings"
)

// Kind identifies one of the named settings that store a value sequence.
// Every kind shares the same codec; kinds differ only in how callers
// interpret the decoded values.
type Kind int

// Setting kinds, in the order they appear in a settings table.
const (
	ForceTags Kind = iota
	DefaultTags
	Tags
	TestSetup
	TestTeardown
	Setup
	Teardown
	SuiteSetup
	SuiteTeardown
	TestTimeout
	Timeout
	Arguments
	ReturnValue
	LibraryImport
	VariablesImport
)

var kindNames = [...]string{
	ForceTags:       "Force Tags",
	DefaultTags:     "Default Tags",
	Tags:            "Tags",
	TestSetup:       "Test Setup",
	TestTeardown:    "Test Teardown",
	Setup:           "Setup",
	Teardown:        "Teardown",
	SuiteSetup:      "Suite Setup",
	SuiteTeardown:   "Suite Teardown",
	TestTimeout:     "Test Timeout",
	Timeout:         "Timeout",
	Arguments:       "Arguments",
	ReturnValue:     "Return Value",
	LibraryImport:   "Library",
	VariablesImport: "Variables",
}

// String returns the display name of the kind, e.g. "Force Tags".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// Kinds returns every setting kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindNames returns the display names of all kinds.
func KindNames() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames[:])
	return names
}

// ParseKind resolves a kind from its display name.
// Matching ignores case, spaces, underscores, hyphens and the brackets used
// by table-style names, so "force_tags", "ForceTags" and "[Force Tags]"
// all resolve to ForceTags.
func ParseKind(name string) (Kind, error) {
	key := normalizeKindName(name)
	if key == "" {
		return 0, ErrEmptyKind
	}
	for i, n := range kindNames {
		if normalizeKindName(n) == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

var kindNameReplacer = strings.NewReplacer(" ", "", "_", "", "-", "", "[", "", "]", "")

func normalizeKindName(name string) string {
	return strings.ToLower(kindNameReplacer.Replace(name))
}

// Holder is implemented by anything that owns a value sequence exposed for
// editing through a single text field.
type Holder interface {
	Sequence() []string
	SetSequence(values []string)
}

// Render returns the display string for the holder's current sequence.
func Render(h Holder) string {
	return Encode(h.Sequence())
}

// Apply decodes text and stores the result in the holder.
func Apply(h Holder, text string) {
	h.SetSequence(Decode(text))
}

// Setting is a value sequence tagged with its kind.
type Setting struct {
	Kind  Kind
	Value []string
}

// Compile-time interface implementation check.
var _ Holder = (*Setting)(nil)

// NewSetting returns an empty setting of the given kind.
func NewSetting(kind Kind) *Setting {
	return &Setting{Kind: kind}
}

// StrValue returns the setting as a display string.
// A nil Value renders as "".
func (s *Setting) StrValue() string {
	return Encode(s.Value)
}

// SetStrValue replaces Value with the decoded text.
func (s *Setting) SetStrValue(text string) {
	s.Value = Decode(text)
}

// Sequence returns a copy of the setting's values.
func (s *Setting) Sequence() []string {
	if s.Value == nil {
		return nil
	}
	out := make([]string, len(s.Value))
	copy(out, s.Value)
	return out
}

// SetSequence stores a copy of values.
func (s *Setting) SetSequence(values []string) {
	if values == nil {
		s.Value = nil
		return
	}
	s.Value = make([]string, len(values))
	copy(s.Value, values)
}
