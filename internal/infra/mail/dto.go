package mail

type ScanDigestData struct {
	LeadName  string
	Extracted int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
