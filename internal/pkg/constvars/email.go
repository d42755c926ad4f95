package constvars

const (
	EmailSendHTMLSubjectFormat = "From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSubjectFormat         = "New %s Form Submission from %s"
	EmailFromFormat            = "%s <%s>"
)

const (
	EmailNotSpecified = "Not specified"
	EmailNotProvided  = "Not provided"
	EmailYes          = "Yes"
	EmailNo           = "No"
)
