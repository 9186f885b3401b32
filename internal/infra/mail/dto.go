package mail

// LeadEmailData feeds every lead email template.
type LeadEmailData struct {
	Name       string
	Email      string
	Course     string
	Phone      string
	CourseLink string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	dialer  func() Dialer
	renders *templates
}
