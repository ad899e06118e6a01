package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mroshb/edu_admissions/internal/models"
)

type fakeEmailSender struct {
	sent []EmailMessage
	err  error
}

func (f *fakeEmailSender) Send(_ context.Context, msg EmailMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func TestEmailNotifier_ApplicationSubmitted(t *testing.T) {
	sender := &fakeEmailSender{}
	n := NewEmailNotifier(sender, "admissions@example.com")

	app, uni, spec := sampleApplication()
	if err := n.ApplicationSubmitted(context.Background(), app, uni, spec); err != nil {
		t.Fatalf("ApplicationSubmitted() error = %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.To != "admissions@example.com" {
		t.Errorf("To = %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "K7M2Q9XZ") || !strings.Contains(msg.Subject, "جامعة القاهرة") {
		t.Errorf("Subject = %q, want reference code and university", msg.Subject)
	}
	if strings.Contains(msg.Body, "<code>") {
		t.Errorf("Body still carries markup: %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Sara <b>Ali</b>") {
		t.Errorf("Body = %q, want the student name as typed", msg.Body)
	}
	if !strings.Contains(msg.HTML, "Sara &lt;b&gt;Ali&lt;/b&gt;") {
		t.Errorf("HTML = %q, want escaped student name", msg.HTML)
	}
	if !strings.HasPrefix(msg.HTML, `<div dir="rtl">`) {
		t.Errorf("HTML = %q, want rtl wrapper", msg.HTML)
	}
}

func TestEmailNotifier_SendError(t *testing.T) {
	sender := &fakeEmailSender{err: errors.New("quota exceeded")}
	n := NewEmailNotifier(sender, "admissions@example.com")

	app, _, _ := sampleApplication()
	if err := n.ApplicationSubmitted(context.Background(), app, nil, nil); err == nil {
		t.Error("ApplicationSubmitted() error = nil, want error")
	}
}

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) ApplicationSubmitted(context.Context, *models.Application, *models.University, *models.Specialization) error {
	c.calls++
	return c.err
}

func TestMulti(t *testing.T) {
	failing := &countingNotifier{err: errors.New("telegram down")}
	ok := &countingNotifier{}

	err := Multi{failing, ok}.ApplicationSubmitted(context.Background(), &models.Application{}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "telegram down") {
		t.Errorf("Multi error = %v, want telegram down", err)
	}
	if failing.calls != 1 || ok.calls != 1 {
		t.Errorf("calls = %d/%d, want every notifier attempted once", failing.calls, ok.calls)
	}

	if err := (Multi{}).ApplicationSubmitted(context.Background(), &models.Application{}, nil, nil); err != nil {
		t.Errorf("empty Multi error = %v, want nil", err)
	}
}
