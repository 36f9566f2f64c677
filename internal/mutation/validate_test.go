package mutation

import (
	"errors"
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
)

func fptr(v float64) *float64 { return &v }
func nptr(v int) *int         { return &v }

func plantSchema() *schema.Schema {
	return &schema.Schema{
		Type: "plant",
		Fields: map[string]schema.FieldSchema{
			"species":   {Kind: domain.KindString, Mutable: false},
			"hydration": {Kind: domain.KindInt, Min: fptr(0), Max: fptr(100), Mutable: true},
			"stage":     {Kind: domain.KindString, Enum: []string{"seed", "sprout"}, Mutable: true},
			"label":     {Kind: domain.KindString, MaxLength: nptr(5), Mutable: true},
			"tags":      {Kind: domain.KindList, MaxLength: nptr(2), Mutable: true},
		},
	}
}

func wantCode(t *testing.T, err error, code Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s, got nil", code)
	}
	if !errors.Is(err, &Error{Code: code}) {
		t.Errorf("Expected code %s, got %v", code, err)
	}
}

func TestValidateField(t *testing.T) {
	s := plantSchema()

	if err := ValidateField(s, "hydration", domain.Int(50), false); err != nil {
		t.Errorf("Valid mutation rejected: %v", err)
	}

	wantCode(t, ValidateField(s, "ghost", domain.Int(1), false), CodeUnknownField)
	wantCode(t, ValidateField(s, "species", domain.String("x"), false), CodeImmutable)
	wantCode(t, ValidateField(s, "hydration", domain.String("wet"), false), CodeTypeMismatch)
	wantCode(t, ValidateField(s, "hydration", domain.Int(101), false), CodeRangeViolation)
	wantCode(t, ValidateField(s, "hydration", domain.Int(-1), false), CodeRangeViolation)
	wantCode(t, ValidateField(s, "label", domain.String("toolong"), false), CodeLengthViolation)
	wantCode(t, ValidateField(s, "stage", domain.String("cooked"), false), CodeEnumViolation)
	wantCode(t, ValidateField(s, "tags",
		domain.List(domain.String("a"), domain.String("b"), domain.String("c")), false), CodeLengthViolation)
}

func TestDevModeBypassesOnlyMutability(t *testing.T) {
	s := plantSchema()

	// Dev mode unlocks the immutable field...
	if err := ValidateField(s, "species", domain.String("x"), true); err != nil {
		t.Errorf("Dev mode should bypass the mutability check: %v", err)
	}

	// ...but never structural validation
	wantCode(t, ValidateField(s, "hydration", domain.Int(500), true), CodeRangeViolation)
	wantCode(t, ValidateField(s, "hydration", domain.Bool(true), true), CodeTypeMismatch)
	wantCode(t, ValidateField(s, "ghost", domain.Int(1), true), CodeUnknownField)
}

func TestErrorTaxonomy(t *testing.T) {
	err := Errf(CodeRangeViolation, "hydration", "value %d too big", 200)

	if CodeOf(err) != CodeRangeViolation {
		t.Errorf("CodeOf = %s", CodeOf(err))
	}
	if !errors.Is(err, &Error{Code: CodeRangeViolation}) {
		t.Error("errors.Is should match by code")
	}
	if errors.Is(err, &Error{Code: CodeImmutable}) {
		t.Error("errors.Is must not match a different code")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("CodeOf of a non-mutation error should be empty")
	}
}
