package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

// Sender is the part of tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts an Arabic summary of each application to the staff chat.
type TelegramNotifier struct {
	sender Sender
	chatID int64
}

func NewTelegramNotifier(sender Sender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chatID: chatID}
}

// NewTelegramBot authorizes the bot token and wraps it in a notifier
func NewTelegramBot(token string, chatID int64, debug bool) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = debug

	logger.Info("Authorized on account", "username", api.Self.UserName)
	return NewTelegramNotifier(api, chatID), nil
}

func (n *TelegramNotifier) ApplicationSubmitted(ctx context.Context, app *models.Application, university *models.University, specialization *models.Specialization) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// RTL mark keeps Arabic lines aligned in clients
	msg := tgbotapi.NewMessage(n.chatID, "\u200f"+FormatApplication(app, university, specialization))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send application notification: %w", err)
	}
	return nil
}

// FormatApplication renders the staff message. User input is HTML escaped.
func FormatApplication(app *models.Application, university *models.University, specialization *models.Specialization) string {
	var b strings.Builder

	b.WriteString("📥 <b>طلب التحاق جديد</b>\n\n")
	fmt.Fprintf(&b, "🔖 رقم الطلب: <code>%s</code>\n", html.EscapeString(app.ReferenceCode))
	fmt.Fprintf(&b, "👤 الاسم: %s\n", html.EscapeString(app.StudentName))
	fmt.Fprintf(&b, "📧 البريد: %s\n", html.EscapeString(app.Email))
	fmt.Fprintf(&b, "📱 الهاتف: %s\n", html.EscapeString(app.Phone))
	fmt.Fprintf(&b, "🌍 الجنسية: %s\n", html.EscapeString(app.Nationality))
	fmt.Fprintf(&b, "🏠 الإقامة: %s\n", html.EscapeString(app.Residence))

	if university != nil {
		fmt.Fprintf(&b, "🏛 الجامعة: %s\n", html.EscapeString(university.LocalizedName(models.LocaleAR)))
	}
	if specialization != nil {
		fmt.Fprintf(&b, "🎓 التخصص: %s\n", html.EscapeString(specialization.LocalizedName(models.LocaleAR)))
		fmt.Fprintf(&b, "⏳ المدة: %s | 💵 الرسوم: %s\n", html.EscapeString(specialization.Duration), html.EscapeString(specialization.Tuition))
	}

	return b.String()
}
