package domain

import "time"

// Profile is the couple's relationship record
type Profile struct {
	YourName    string
	PartnerName string
	StartDate   time.Time // relationship start
	UpdatedAt   time.Time
}

// Anniversary derives the relationship timespan as of now
func (p Profile) Anniversary(now time.Time) AnniversaryInfo {
	return GetAnniversaryInfo(p.StartDate, now)
}
