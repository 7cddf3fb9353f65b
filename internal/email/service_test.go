package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/config"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(sent *[]sentMail, failWith error) *Service {
	s := NewService(config.EmailConfig{
		SMTPHost:    "smtp.test",
		SMTPPort:    "587",
		SMTPUser:    "noreply@zazzlife.com",
		FrontendURL: "https://app.zazzlife.com",
	})
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if failWith != nil {
			return failWith
		}
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return s
}

func TestSendVerificationEmail(t *testing.T) {
	var sent []sentMail
	s := newTestService(&sent, nil)

	require.NoError(t, s.SendVerificationEmail(context.Background(), "alice@example.com", "alice", "tok+en/1"))
	require.Len(t, sent, 1)

	m := sent[0]
	assert.Equal(t, "smtp.test:587", m.addr)
	assert.Equal(t, "noreply@zazzlife.com", m.from)
	assert.Equal(t, []string{"alice@example.com"}, m.to)
	assert.Contains(t, m.msg, "Subject: Verify your email address\r\n")
	assert.Contains(t, m.msg, "https://app.zazzlife.com/verify-email?token=tok%2Ben%2F1")
	assert.Contains(t, m.msg, "Hi alice")
	assert.Contains(t, m.msg, "24 hours")
}

func TestSendPasswordResetEmail(t *testing.T) {
	var sent []sentMail
	s := newTestService(&sent, nil)

	require.NoError(t, s.SendPasswordResetEmail(context.Background(), "bob@example.com", "<bob>", "v4.local.abc"))
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].msg, "/reset-password?token=v4.local.abc")
	assert.Contains(t, sent[0].msg, "&lt;bob&gt;", "usernames are escaped")
	assert.Contains(t, sent[0].msg, "1 hour")
}

func TestSendFailure(t *testing.T) {
	boom := errors.New("smtp down")
	s := newTestService(nil, boom)

	err := s.SendVerificationEmail(context.Background(), "alice@example.com", "alice", "t")
	assert.ErrorIs(t, err, boom)
}
