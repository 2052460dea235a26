package models

import "testing"

func TestSlotForEvent(t *testing.T) {
	cases := []struct {
		event string
		slot  Slot
	}{
		{"Fixathon", SlotOne},
		{"Mute Masters", SlotOne},
		{"Treasure Titans", SlotOne},
		{"Bid Mayhem", SlotBoth},
		{"QRush", SlotTwo},
		{"VisionX", SlotTwo},
		{"ThinkSync", SlotTwo},
		{"Crazy Sell", SlotTwo},
	}
	for _, tc := range cases {
		slot, ok := SlotForEvent(tc.event)
		if !ok {
			t.Fatalf("SlotForEvent(%q): unexpectedly unknown", tc.event)
		}
		if slot != tc.slot {
			t.Errorf("SlotForEvent(%q) = %q, want %q", tc.event, slot, tc.slot)
		}
	}
}

func TestSlotForEventUnknown(t *testing.T) {
	if _, ok := SlotForEvent("Chess"); ok {
		t.Error("SlotForEvent(\"Chess\") should not resolve")
	}
	if _, ok := SlotForEvent(""); ok {
		t.Error("SlotForEvent(\"\") should not resolve")
	}
}
