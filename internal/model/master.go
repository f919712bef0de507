package model

// Master is one workshop master application, same form family as Volunteer
// but managed through its own CRUD endpoints (multipart, file attachments).
type Master struct {
	ID       int    `json:"id"`
	FormType string `json:"form_type"`

	Name       string `json:"name"`
	Profession string `json:"profession"`
	Department string `json:"department"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FB         string `json:"fb"`
	Social     string `json:"social"`
	Age        int    `json:"age"`

	ProgramDirection   string `json:"program_direction"`
	ProgramName        string `json:"program_name"`
	ProgramDescription string `json:"program_description"`
	ProgramExample     string `json:"program_example"`
	EventDates         string `json:"event_dates"`
	Quantity           string `json:"quantity"`
	Time               string `json:"time"`
	Duration           string `json:"duration"`
	Lang               string `json:"lang"`
	Raider             string `json:"raider"`
	Camping            string `json:"camping"`
	Conditions         string `json:"conditions"`

	PreviouslyParticipated bool   `json:"previously_participated"`
	HelpNow                bool   `json:"help_now"`
	Inspiration            string `json:"inspiration"`
	Negative               string `json:"negative"`
	Experience             string `json:"experience"`
	AdditionalInfo         string `json:"additional_info"`

	CreatedAt string  `json:"created_at"`
	DeletedAt *string `json:"deleted_at"`

	Files []string `json:"files"`
}

// Deleted reports whether the record is soft-deleted upstream.
func (m *Master) Deleted() bool { return m.DeletedAt != nil }

// CanDelete reports whether the delete action may be offered.
func (m *Master) CanDelete() bool { return !m.Deleted() }

// ShowFiles reports whether file previews may be rendered.
func (m *Master) ShowFiles() bool { return !m.Deleted() && len(m.Files) > 0 }
