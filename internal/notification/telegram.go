package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when token is empty.
func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func createdText(book *domain.Book, r *domain.Reservation) string {
	return fmt.Sprintf(
		"*Book reserved!*\n\n"+"Book: %s by %s\n"+"Period: %s - %s\n"+"Copies left: %d",
		book.Title, book.Author,
		r.StartDate.Format(dateLayout), r.EndDate.Format(dateLayout),
		book.Stock,
	)
}

func cancelledText(book *domain.Book, r *domain.Reservation) string {
	return fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Book: %s by %s\n"+"Period: %s - %s",
		book.Title, book.Author,
		r.StartDate.Format(dateLayout), r.EndDate.Format(dateLayout),
	)
}

func completedText(book *domain.Book, _ *domain.Reservation) string {
	return fmt.Sprintf(
		"*Reservation completed*\n\n"+"Book: %s by %s\n"+"Thank you for returning it on time.",
		book.Title, book.Author,
	)
}

func (n *TelegramNotifier) NotifyReservationCreated(
	ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation,
) {
	n.send(ctx, user.TelegramChatID, createdText(book, r))
}

func (n *TelegramNotifier) NotifyReservationCancelled(
	ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation,
) {
	n.send(ctx, user.TelegramChatID, cancelledText(book, r))
}

func (n *TelegramNotifier) NotifyReservationCompleted(
	ctx context.Context, user *domain.User, book *domain.Book, r *domain.Reservation,
) {
	n.send(ctx, user.TelegramChatID, completedText(book, r))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
