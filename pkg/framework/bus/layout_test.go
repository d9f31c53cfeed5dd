package bus

import "testing"

func TestArrangementChannelCount(t *testing.T) {
	tests := []struct {
		arr  SpeakerArrangement
		want int32
		name string
	}{
		{Empty, 0, "disabled"},
		{Mono, 1, "mono"},
		{Stereo, 2, "stereo"},
		{LCR, 3, "lcr"},
		{Quad, 4, "quad"},
		{Surround51, 6, "5.1"},
		{Surround71, 8, "7.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arr.ChannelCount(); got != tt.want {
				t.Errorf("ChannelCount() = %d, want %d", got, tt.want)
			}
			if got := tt.arr.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			parsed, err := ParseArrangement(tt.name)
			if err != nil || parsed != tt.arr {
				t.Errorf("ParseArrangement(%q) = %s, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestParseArrangementUnknown(t *testing.T) {
	if _, err := ParseArrangement("ambisonic"); err == nil {
		t.Error("Expected error for unknown arrangement")
	}
}

func TestArrangementForChannels(t *testing.T) {
	if got := ArrangementForChannels(5); got.ChannelCount() != 5 {
		t.Errorf("Expected discrete 5 channel arrangement, got %d", got.ChannelCount())
	}
	if got := ArrangementForChannels(5).String(); got != "discrete(5)" {
		t.Errorf("Unexpected name %q", got)
	}
	if got := ArrangementForChannels(-2); got != Empty {
		t.Errorf("Negative count should be empty, got %s", got)
	}
	if got := ArrangementForChannels(64).ChannelCount(); got != 64 {
		t.Errorf("Expected 64 channels, got %d", got)
	}
}

func TestLayoutMainBuses(t *testing.T) {
	var none Layout
	if none.MainInput() != Empty || none.MainOutput() != Empty {
		t.Error("Missing buses should report empty arrangements")
	}

	l := Layout{
		Inputs:  []SpeakerArrangement{Stereo, Mono},
		Outputs: []SpeakerArrangement{Quad},
	}
	if l.MainInput() != Stereo {
		t.Errorf("MainInput() = %s", l.MainInput())
	}
	if l.TotalInputChannels() != 3 {
		t.Errorf("TotalInputChannels() = %d", l.TotalInputChannels())
	}
	if l.TotalOutputChannels() != 4 {
		t.Errorf("TotalOutputChannels() = %d", l.TotalOutputChannels())
	}
	if got := l.String(); got != "stereo+mono -> quad" {
		t.Errorf("String() = %q", got)
	}
	if got := none.String(); got != "none -> none" {
		t.Errorf("String() = %q", got)
	}
}
