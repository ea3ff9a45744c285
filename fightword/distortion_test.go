package fightword

import (
	"strings"
	"testing"
)

func TestParseDistortions(t *testing.T) {
	cases := []struct {
		desc    string
		in      string
		want    DistortionSet
		wantErr bool
	}{
		{desc: "all", in: "shear,fisheye,perspective", want: AllDistortions},
		{desc: "order does not matter", in: "perspective, shear", want: DistortShear | DistortPerspective},
		{desc: "case and spaces", in: " Fisheye ", want: DistortFisheye},
		{desc: "empty", in: "", want: 0},
		{desc: "trailing comma", in: "shear,", want: DistortShear},
		{desc: "duplicates", in: "shear,shear", want: DistortShear},
		{desc: "invalid", in: "shear,twirl", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			got, err := ParseDistortions(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseDistortions(%q) = %v, %v, wanted error: %v", c.in, got, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseDistortions(%q) = %v, wanted %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseDistortionsErrorListsValid(t *testing.T) {
	_, err := ParseDistortions("twirl,ripple")
	if err == nil {
		t.Fatal("ParseDistortions() = _, nil, wanted error")
	}
	for _, s := range []string{"twirl", "ripple", "shear", "fisheye", "perspective"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error %q does not mention %q", err, s)
		}
	}
}

func TestDistortionSetString(t *testing.T) {
	if got, want := AllDistortions.String(), "shear,fisheye,perspective"; got != want {
		t.Errorf("AllDistortions.String() = %q, wanted %q", got, want)
	}
	if got, want := (DistortPerspective | DistortShear).String(), "shear,perspective"; got != want {
		t.Errorf("String() = %q, wanted %q", got, want)
	}
	if got := DistortionSet(0).String(); got != "" {
		t.Errorf("DistortionSet(0).String() = %q, wanted empty", got)
	}
}
