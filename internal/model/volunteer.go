package model

// Volunteer is one submitted volunteer application form.
// Timestamps stay as wire strings; the upstream emits ISO dates without a
// zone and the dashboard never does arithmetic on them.
type Volunteer struct {
	ID       int    `json:"id"`
	FormType string `json:"form_type"`

	Age        int    `json:"age"`
	Profession string `json:"profession"`
	Department string `json:"department"`
	Camping    string `json:"camping"`
	Conditions string `json:"conditions"`
	HelpNow    bool   `json:"help_now"`

	Name    string `json:"name"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	FB      string `json:"fb"`
	Social  string `json:"social"`

	PreviouslyParticipated string `json:"previously_participated"`
	ProgramDirection       string `json:"program_direction"`
	ProgramName            string `json:"program_name"`
	ProgramDescription     string `json:"program_description"`
	ProgramExample         string `json:"program_example"`
	EventDates             string `json:"event_dates"`
	Quantity               int    `json:"quantity"`
	Time                   string `json:"time"`
	Duration               string `json:"duration"`
	Lang                   string `json:"lang"`
	Raider                 string `json:"raider"`

	Inspiration    string `json:"inspiration"`
	Negative       string `json:"negative"`
	Experience     string `json:"experience"`
	AdditionalInfo string `json:"additional_info"`

	CreatedAt string  `json:"created_at"`
	DeletedAt *string `json:"deleted_at"`

	Files []string `json:"files"`
}

// Deleted reports whether the record is soft-deleted upstream.
func (v *Volunteer) Deleted() bool { return v.DeletedAt != nil }

// ShowFiles reports whether file previews may be rendered.
// Soft-deleted rows never render their attachments.
func (v *Volunteer) ShowFiles() bool { return !v.Deleted() && len(v.Files) > 0 }
