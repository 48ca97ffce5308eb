package entity

// Spreadsheet column names. Header matching is case-sensitive and exact.
const (
	ColName             = "Name"
	ColPhone            = "Phone"
	ColEmail            = "Email"
	ColCompany          = "Company"
	ColTitle            = "Title"
	ColState            = "State"
	ColStatus           = "Status"
	ColMeetingDateTime  = "MeetingDateTime"
	ColCallbackDateTime = "CallbackDateTime"
	ColLastCallDateTime = "LastCallDateTime"
	ColAttempts         = "Attempts"
	ColNotes            = "Notes"
)

// RequiredColumns must be present in the header and non-blank in every row.
var RequiredColumns = []string{ColName, ColPhone, ColEmail}

// OptionalColumns default to empty when absent from the source file.
var OptionalColumns = []string{ColCompany, ColTitle, ColState}

// TrackingColumns are app-managed. They initialize empty on import unless
// the file carries them (a re-imported full export does).
var TrackingColumns = []string{
	ColStatus, ColMeetingDateTime, ColCallbackDateTime,
	ColLastCallDateTime, ColAttempts, ColNotes,
}

// ExportColumns is the full-export column order, which is also the
// canonical field order everywhere a whole record is written out.
var ExportColumns = []string{
	ColName, ColPhone, ColEmail, ColCompany, ColTitle, ColState,
	ColStatus, ColMeetingDateTime, ColCallbackDateTime,
	ColLastCallDateTime, ColAttempts, ColNotes,
}
