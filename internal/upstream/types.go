package upstream

// RawLesson is one lesson record exactly as the scheduling API returns it.
// Every field beyond the two timestamps is optional in practice; the
// normalizer in the service layer degrades missing pieces to defaults.
type RawLesson struct {
	DataInizio string       `json:"dataInizio"`
	DataFine   string       `json:"dataFine"`
	Evento     *RawEvent    `json:"evento"`
	Docenti    []RawTeacher `json:"docenti"`
	Aule       []RawRoom    `json:"aule"`
}

// RawEvent carries the teaching details of a lesson.
type RawEvent struct {
	DettagliDidattici []RawCourseDetail `json:"dettagliDidattici"`
}

// RawCourseDetail names the course a lesson belongs to.
type RawCourseDetail struct {
	Nome string `json:"nome"`
}

// RawTeacher is an instructor entry attached to a lesson.
type RawTeacher struct {
	Nome    string `json:"nome"`
	Cognome string `json:"cognome"`
}

// RawRoom is a room entry attached to a lesson.
type RawRoom struct {
	ID          string `json:"id"`
	Descrizione string `json:"descrizione"`
}
