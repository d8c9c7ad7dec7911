package params

// SendEmailParams contains the fields of a single send.
type SendEmailParams struct {
	To      string
	Subject string
	Body    string
	HTML    string
}

// SendBulkEmailParams contains the fields of a bulk send. Recipients holds
// the decoded request values in order; non-string values are reported as
// failures for that position.
type SendBulkEmailParams struct {
	Recipients []interface{}
	Subject    string
	Body       string
	HTML       string
}
