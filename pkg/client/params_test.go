package client_test

import (
	"testing"

	"github.com/open-meteo/go-requests/pkg/client"
)

func TestParamsEncodeOrder(t *testing.T) {
	p := client.NewParams().
		Set("latitude", []float64{52.54, 48.1}).
		Set("hourly", []string{"temperature_2m", "precipitation"}).
		Set("start_date", "2023-08-01")

	got, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "latitude=52.54%2C48.1&hourly=temperature_2m%2Cprecipitation&start_date=2023-08-01"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestParamsEncodeTypes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "era5_seamless", "era5_seamless"},
		{"bool", true, "true"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"float64", 13.41, "13.41"},
		{"float32", float32(2.5), "2.5"},
		{"float_slice", []float64{52.54, 48.1, 48.4}, "52.54%2C48.1%2C48.4"},
		{"int_slice", []int{1, 2, 3}, "1%2C2%2C3"},
		{"mixed_slice", []any{"auto", 2}, "auto%2C2"},
		{"nil", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := client.NewParams().Set("v", tc.value).Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != "v="+tc.want {
				t.Errorf("Encode() = %q, want %q", got, "v="+tc.want)
			}
		})
	}
}

func TestParamsEncodeUnsupportedType(t *testing.T) {
	p := client.NewParams().Set("v", struct{ X int }{1})
	if _, err := p.Encode(); err == nil {
		t.Fatal("Encode() with struct value: expected error")
	}
}

func TestParamsSetReplacesInPlace(t *testing.T) {
	p := client.NewParams().
		Set("a", 1).
		Set("b", 2).
		Set("a", 3)

	got, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got != "a=3&b=2" {
		t.Errorf("Encode() = %q, want %q", got, "a=3&b=2")
	}
}

func TestParamsClone(t *testing.T) {
	p := client.NewParams().Set("latitude", 52.54)

	c := p.Clone()
	c.Set("format", "flatbuffers")
	c.Set("latitude", 48.1)

	if _, ok := p.Get("format"); ok {
		t.Error("Clone() mutation leaked a new key into the original")
	}
	if v, _ := p.Get("latitude"); v != 52.54 {
		t.Errorf("original latitude = %v after clone mutation, want 52.54", v)
	}
	if p.Len() != 1 || c.Len() != 2 {
		t.Errorf("Len() = (%d, %d), want (1, 2)", p.Len(), c.Len())
	}
}

func TestParamsNilReceiverClone(t *testing.T) {
	var p *client.Params
	c := p.Clone()
	if c == nil || c.Len() != 0 {
		t.Fatalf("Clone() of nil = %v, want empty params", c)
	}
}
