package validate_test

import (
	"testing"

	"github.com/webnexa/api/pkg/validate"
)

type profileInput struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"nullable,max=20"`
	Message string `json:"message" validate:"required,max=5000"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(profileInput{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Phone:   "", // nullable — allowed to be empty
		Message: "We need a new site.",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(profileInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["message"]; !ok {
		t.Error("expected message to be required")
	}
	if _, ok := errs["phone"]; ok {
		t.Error("phone is nullable, should not error when empty")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected one-char name to fail min=2")
	}
	if errs := validate.Struct(in{Name: "toolongname"}); !validate.HasErrors(errs) {
		t.Error("expected long name to fail max=5")
	}
	if errs := validate.Struct(in{Name: "Jane"}); validate.HasErrors(errs) {
		t.Errorf("expected Jane to pass, got: %v", errs)
	}
}

func TestInRuleWithMultipleValues(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=new,contacted,completed"`
	}
	if errs := validate.Struct(in{Status: "archived"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	for _, s := range []string{"new", "contacted", "completed"} {
		if errs := validate.Struct(in{Status: s}); validate.HasErrors(errs) {
			t.Errorf("expected status %q to pass, got: %v", s, errs)
		}
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
	}
	if errs := validate.Struct(in{Rating: 0.5}); !validate.HasErrors(errs) {
		t.Error("expected rating 0.5 to fail gte=1")
	}
	if errs := validate.Struct(in{Rating: 6}); !validate.HasErrors(errs) {
		t.Error("expected rating 6 to fail lte=5")
	}
	if errs := validate.Struct(in{Rating: 4.5}); validate.HasErrors(errs) {
		t.Errorf("expected rating 4.5 to pass, got: %v", errs)
	}
}

func TestMessagesUseJSONFieldName(t *testing.T) {
	type in struct {
		FullName string `json:"full_name" validate:"required"`
	}
	errs := validate.Struct(in{})
	if _, ok := errs["full_name"]; !ok {
		t.Errorf("expected error keyed by json name, got: %v", errs)
	}
}
