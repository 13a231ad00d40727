package user

import "testing"

func TestParseMembership(t *testing.T) {
	tests := []struct {
		in      string
		want    Membership
		wantErr bool
	}{
		{in: "free", want: MembershipFree},
		{in: " Paid ", want: MembershipPaid},
		{in: "PREMIUM", want: MembershipPremium},
		{in: "gold", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMembership(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseMembership(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseMembership(%q)=%q,%v want=%q", tt.in, got, err, tt.want)
		}
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Fatalf("zero patch should be empty")
	}
	email := "a@b.com"
	if (Patch{Email: &email}).IsEmpty() {
		t.Fatalf("patch with email should not be empty")
	}
}

func TestMembershipValidIsExact(t *testing.T) {
	for _, m := range []Membership{MembershipFree, MembershipPaid, MembershipPremium} {
		if !m.Valid() {
			t.Fatalf("%q should be valid", m)
		}
	}
	for _, m := range []Membership{"PAID", " paid ", "gold", ""} {
		if m.Valid() {
			t.Fatalf("%q should not be valid", m)
		}
	}
}
