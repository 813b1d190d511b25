// Package models defines server-side data models persisted in the database.
package models

// LiftTemplate carries the fields shared by every record created from one
// submission. Combined with a serial number it becomes a LiftRecord.
type LiftTemplate struct {
	Project         Project
	ComponentID     string
	InstallDate     Date
	AxisAlphaStart  string
	AxisAlphaEnd    string
	AxisNumberStart string
	AxisNumberEnd   string
}

// LiftRecord is one persisted crane-lift installation event.
// Records are never updated or deleted once written.
type LiftRecord struct {
	// ID is assigned by the store, increases monotonically and is never reused.
	ID int64

	Project      Project
	ComponentID  string
	SerialNumber string
	InstallDate  Date

	// AxisAlphaStart and AxisAlphaEnd bound the position on the lettered axis.
	AxisAlphaStart string
	AxisAlphaEnd   string
	// AxisNumberStart and AxisNumberEnd bound the position on the numbered axis.
	AxisNumberStart string
	AxisNumberEnd   string
}

// WithSerial builds the record a template produces for one serial number.
func (t LiftTemplate) WithSerial(serial string) LiftRecord {
	return LiftRecord{
		Project:         t.Project,
		ComponentID:     t.ComponentID,
		SerialNumber:    serial,
		InstallDate:     t.InstallDate,
		AxisAlphaStart:  t.AxisAlphaStart,
		AxisAlphaEnd:    t.AxisAlphaEnd,
		AxisNumberStart: t.AxisNumberStart,
		AxisNumberEnd:   t.AxisNumberEnd,
	}
}

// Position renders the grid range as "B-C.5/3-4".
func (r LiftRecord) Position() string {
	return r.AxisAlphaStart + "-" + r.AxisAlphaEnd + "/" + r.AxisNumberStart + "-" + r.AxisNumberEnd
}
