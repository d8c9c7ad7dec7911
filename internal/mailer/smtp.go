package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/logger"
)

var (
	// ErrNoRecipient is returned when a message has no To address.
	ErrNoRecipient = errors.New("no recipients defined")
	// ErrNoSender is returned when a message has no From address.
	ErrNoSender = errors.New("no sender defined")
	// ErrMissingCredentials is returned by Verify when no username is configured.
	ErrMissingCredentials = errors.New("missing credentials for PLAIN")
	// ErrAuthUnsupported is returned when credentials are configured but
	// the server does not offer AUTH.
	ErrAuthUnsupported = errors.New("smtp: server does not support AUTH")
)

// SMTPConfig configures the SMTP transport.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (465); otherwise STARTTLS when offered
	Username string
	Password string
	Timeout  time.Duration
	// TLSConfig overrides the client TLS settings. ServerName defaults to Host.
	TLSConfig *tls.Config
}

// SMTPTransport delivers messages over SMTP, one connection per message.
type SMTPTransport struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPTransport creates an SMTP transport from cfg.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPTransport{cfg: cfg, now: time.Now}
}

// Send delivers msg and returns the Message-ID written into its headers.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (string, error) {
	if strings.TrimSpace(msg.To) == "" {
		return "", transportError(msg.To, ErrNoRecipient)
	}
	from, err := envelopeAddress(msg.From)
	if err != nil {
		return "", transportError(msg.To, err)
	}
	to, err := envelopeAddress(msg.To)
	if err != nil {
		return "", transportError(msg.To, err)
	}

	messageID := newMessageID(from)
	raw, err := buildMessage(msg, messageID, t.now())
	if err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "smtp: build message"))
	}

	client, closeConn, err := t.connect(ctx)
	if err != nil {
		return "", transportError(msg.To, err)
	}
	defer closeConn()

	if err := client.Mail(from); err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "smtp: MAIL FROM"))
	}
	if err := client.Rcpt(to); err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "smtp: RCPT TO"))
	}

	w, err := client.Data()
	if err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "smtp: DATA"))
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return "", transportError(msg.To, errors.Wrap(err, "smtp: write message"))
	}
	if err := w.Close(); err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "smtp: end of data"))
	}

	// The message is accepted once DATA is closed; QUIT failures are not delivery failures.
	if err := client.Quit(); err != nil {
		logger.Log.Debug("smtp quit failed", zap.Error(err))
	}

	return messageID, nil
}

// Verify connects, negotiates TLS and authenticates without sending mail.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	if t.cfg.Username == "" {
		return ErrMissingCredentials
	}
	client, closeConn, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer closeConn()

	return errors.Wrap(client.Quit(), "smtp: QUIT")
}

// connect dials the server and returns an authenticated client. The
// returned func closes the connection and must always be called.
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, func(), error) {
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	dialer := &net.Dialer{Timeout: t.cfg.Timeout}

	var (
		conn net.Conn
		err  error
	)
	if t.cfg.Secure {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: t.tlsConfig()}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "smtp: dial %s", addr)
	}

	deadline := time.Now().Add(t.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	// Abort blocking reads and writes when the request goes away.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		stop()
		_ = conn.Close()
		return nil, func() {}, errors.Wrap(err, "smtp: greeting")
	}
	closeConn := func() {
		stop()
		_ = client.Close()
	}

	if !t.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(t.tlsConfig()); err != nil {
				closeConn()
				return nil, func() {}, errors.Wrap(err, "smtp: STARTTLS")
			}
		}
	}

	if t.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			closeConn()
			return nil, func() {}, ErrAuthUnsupported
		}
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			closeConn()
			return nil, func() {}, errors.Wrap(err, "smtp: AUTH")
		}
	}

	return client, closeConn, nil
}

func (t *SMTPTransport) tlsConfig() *tls.Config {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if t.cfg.TLSConfig != nil {
		cfg = t.cfg.TLSConfig.Clone()
	}
	if cfg.ServerName == "" {
		cfg.ServerName = t.cfg.Host
	}
	return cfg
}

// envelopeAddress extracts the bare address used in MAIL FROM / RCPT TO.
// Values that do not parse are passed through so the server can reject them.
func envelopeAddress(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrNoSender
	}
	if addr, err := mail.ParseAddress(value); err == nil {
		return addr.Address, nil
	}
	return value, nil
}

func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// buildMessage renders msg as RFC 5322 text. When both bodies are present
// it produces multipart/alternative with the plain part first.
func buildMessage(msg Message, messageID string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf, "From", msg.From)
	writeHeader(&buf, "To", msg.To)
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&buf, "Message-ID", messageID)
	writeHeader(&buf, "Date", now.Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")

	switch {
	case msg.Text != "" && msg.HTML != "":
		mw := multipart.NewWriter(&buf)
		writeHeader(&buf, "Content-Type", mime.FormatMediaType("multipart/alternative", map[string]string{"boundary": mw.Boundary()}))
		buf.WriteString("\r\n")

		if err := writePart(mw, "text/plain", msg.Text); err != nil {
			return nil, err
		}
		if err := writePart(mw, "text/html", msg.HTML); err != nil {
			return nil, err
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
	case msg.HTML != "":
		if err := writeSinglePart(&buf, "text/html", msg.HTML); err != nil {
			return nil, err
		}
	default:
		if err := writeSinglePart(&buf, "text/plain", msg.Text); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

var headerNewlines = strings.NewReplacer("\r", "", "\n", "")

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(headerNewlines.Replace(value))
	buf.WriteString("\r\n")
}

func writePart(mw *multipart.Writer, contentType, body string) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType+"; charset=utf-8")
	header.Set("Content-Transfer-Encoding", "quoted-printable")

	pw, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	return writeQuotedPrintable(pw, body)
}

func writeSinglePart(buf *bytes.Buffer, contentType, body string) error {
	writeHeader(buf, "Content-Type", contentType+"; charset=utf-8")
	writeHeader(buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")
	return writeQuotedPrintable(buf, body)
}

func writeQuotedPrintable(w io.Writer, body string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}
