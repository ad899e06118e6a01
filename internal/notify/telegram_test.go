package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/edu_admissions/internal/models"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func sampleApplication() (*models.Application, *models.University, *models.Specialization) {
	app := &models.Application{
		ReferenceCode: "K7M2Q9XZ",
		StudentName:   "Sara <b>Ali</b>",
		Email:         "sara@example.com",
		Phone:         "+20 100 123 4567",
		Nationality:   "Egypt",
		Residence:     "Cairo",
	}
	uni := &models.University{NameEN: "Cairo University", NameAR: "جامعة القاهرة"}
	spec := &models.Specialization{NameEN: "Medicine", NameAR: "الطب", Duration: "6 سنة", Tuition: "500 دولار"}
	return app, uni, spec
}

func TestTelegramNotifier_ApplicationSubmitted(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifier(sender, 12345)

	app, uni, spec := sampleApplication()
	if err := n.ApplicationSubmitted(context.Background(), app, uni, spec); err != nil {
		t.Fatalf("ApplicationSubmitted() error = %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want tgbotapi.MessageConfig", sender.sent[0])
	}
	if msg.ChatID != 12345 {
		t.Errorf("ChatID = %d, want 12345", msg.ChatID)
	}
	if msg.ParseMode != tgbotapi.ModeHTML {
		t.Errorf("ParseMode = %q, want %q", msg.ParseMode, tgbotapi.ModeHTML)
	}
	for _, want := range []string{"K7M2Q9XZ", "جامعة القاهرة", "الطب", "500 دولار", "Sara &lt;b&gt;Ali&lt;/b&gt;"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("message missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestTelegramNotifier_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("bad gateway")}
	n := NewTelegramNotifier(sender, 12345)

	app, uni, _ := sampleApplication()
	if err := n.ApplicationSubmitted(context.Background(), app, uni, nil); err == nil {
		t.Error("ApplicationSubmitted() expected error, got nil")
	}
}

func TestFormatApplication_WithoutSpecialization(t *testing.T) {
	app, uni, _ := sampleApplication()
	text := FormatApplication(app, uni, nil)

	if strings.Contains(text, "التخصص") {
		t.Errorf("FormatApplication() mentions a specialization: %s", text)
	}
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = NopNotifier{}
	app, uni, spec := sampleApplication()
	if err := n.ApplicationSubmitted(context.Background(), app, uni, spec); err != nil {
		t.Errorf("NopNotifier error = %v", err)
	}
}
