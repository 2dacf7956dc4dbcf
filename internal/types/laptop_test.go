package types

import "testing"

func TestParseUsageType(t *testing.T) {
	tests := []struct {
		in   string
		want UsageType
		ok   bool
	}{
		{"gaming", UsageGaming, true},
		{" Creative ", UsageCreative, true},
		{"BUSINESS", UsageBusiness, true},
		{"", "", false},
		{"workstation", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUsageType(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ParseUsageType(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHasDedicatedGPU(t *testing.T) {
	tests := []struct {
		gpu  string
		want bool
	}{
		{"", false},
		{"None", false},
		{"Integrated", false},
		{"Intel Iris Xe", false},
		{"Intel UHD Graphics", false},
		{"NVIDIA RTX 4060", true},
		{"AMD Radeon RX 6700M", true},
	}
	for _, tt := range tests {
		t.Run(tt.gpu, func(t *testing.T) {
			l := Laptop{GPU: tt.gpu}
			if got := l.HasDedicatedGPU(); got != tt.want {
				t.Fatalf("HasDedicatedGPU(%q) = %v, want %v", tt.gpu, got, tt.want)
			}
		})
	}
}
