package models

// Slot is a coarse time-window identifier. "BOTH" means the event spans both
// windows and is mutually exclusive with every other event for that student.
type Slot string

const (
	SlotOne  Slot = "1"
	SlotTwo  Slot = "2"
	SlotBoth Slot = "BOTH"
)

// EventBidMayhem is the only event occupying both slots.
const EventBidMayhem = "Bid Mayhem"

// eventSlots maps every symposium event to its time slot.
var eventSlots = map[string]Slot{
	"Fixathon":        SlotOne,
	"Mute Masters":    SlotOne,
	"Treasure Titans": SlotOne,
	EventBidMayhem:    SlotBoth,
	"QRush":           SlotTwo,
	"VisionX":         SlotTwo,
	"ThinkSync":       SlotTwo,
	"Crazy Sell":      SlotTwo,
}

// SlotForEvent resolves an event name to its slot. The second return is false
// for unknown events.
func SlotForEvent(name string) (Slot, bool) {
	slot, ok := eventSlots[name]
	return slot, ok
}
