package models

// Draft is the last form input a user asked to keep instead of submitting.
// It is echoed back verbatim and never validated.
type Draft struct {
	ComponentID     string
	SerialNumber    string
	AxisAlphaStart  string
	AxisAlphaEnd    string
	AxisNumberStart string
	AxisNumberEnd   string
}
