package layout

type Element int

const (
	ElementTime Element = iota
	ElementDate
	ElementStatus
	ElementSample
	ElementRow1LeftValue
	ElementRow1LeftLabel
	ElementRow1MiddleValue
	ElementRow1MiddleLabel
	ElementRow1RightValue
	ElementRow1RightLabel
	ElementRow2LeftValue
	ElementRow2LeftLabel
	ElementRow2RightValue
	ElementRow2RightLabel
	ElementOverlay
	ElementOverlayLog

	NumElements
)

var elementNames = [NumElements]string{
	ElementTime:            "time",
	ElementDate:            "date",
	ElementStatus:          "status",
	ElementSample:          "sample",
	ElementRow1LeftValue:   "row1_left_value",
	ElementRow1LeftLabel:   "row1_left_label",
	ElementRow1MiddleValue: "row1_middle_value",
	ElementRow1MiddleLabel: "row1_middle_label",
	ElementRow1RightValue:  "row1_right_value",
	ElementRow1RightLabel:  "row1_right_label",
	ElementRow2LeftValue:   "row2_left_value",
	ElementRow2LeftLabel:   "row2_left_label",
	ElementRow2RightValue:  "row2_right_value",
	ElementRow2RightLabel:  "row2_right_label",
	ElementOverlay:         "overlay",
	ElementOverlayLog:      "overlay_log",
}

func (e Element) String() string {
	if e < 0 || e >= NumElements {
		return "unknown"
	}
	return elementNames[e]
}

// Slot is a value/label pair bound to one measurement kind.
type Slot struct {
	Row, Col int
	Value    Element
	Label    Element
}

func (s Slot) String() string {
	return elementNames[s.Value][:len(elementNames[s.Value])-len("_value")]
}

var row1Slots = [3]Slot{
	{Row: 1, Col: 0, Value: ElementRow1LeftValue, Label: ElementRow1LeftLabel},
	{Row: 1, Col: 1, Value: ElementRow1MiddleValue, Label: ElementRow1MiddleLabel},
	{Row: 1, Col: 2, Value: ElementRow1RightValue, Label: ElementRow1RightLabel},
}

var row2Slots = [2]Slot{
	{Row: 2, Col: 0, Value: ElementRow2LeftValue, Label: ElementRow2LeftLabel},
	{Row: 2, Col: 1, Value: ElementRow2RightValue, Label: ElementRow2RightLabel},
}

// Slots lists every slot, row 1 first.
func Slots() []Slot {
	return []Slot{row1Slots[0], row1Slots[1], row1Slots[2], row2Slots[0], row2Slots[1]}
}
