package usecases

import (
	"context"
	"fmt"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/ticket"
	vo "hoteltec/internal/domain/ticket/valueobjects"
	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	// UserID is nil for operator replies.
	UserID  *uint
	Content string
	IsAdmin bool
}

// MarkdownRenderer turns comment markdown into sanitized HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

// ReplyMailer notifies the ticket owner about operator replies.
type ReplyMailer interface {
	SendTicketReply(to, ticketNumber, ticketTitle string) error
}

// AddCommentUseCase appends a comment to a ticket. Operator replies reopen
// resolved tickets and notify the owner by email and in-app notification,
// both best effort after the comment is saved.
type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.UserRepository
	notifRepo   notification.NotificationRepository
	markdown    MarkdownRenderer
	mailer      ReplyMailer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.UserRepository,
	notifRepo notification.NotificationRepository,
	markdown MarkdownRenderer,
	mailer ReplyMailer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		markdown:    markdown,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.Comment, error) {
	if cmd.Content == "" {
		return nil, apperrors.NewValidationError("comment content is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if cmd.UserID != nil && t.UserID() != *cmd.UserID {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	if t.Status() == vo.StatusClosed {
		return nil, apperrors.NewConflictError("ticket is closed")
	}

	html, err := uc.markdown.Render(cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to render comment")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.UserID, cmd.Content, html, cmd.IsAdmin)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}

	if cmd.IsAdmin && t.Status() == vo.StatusResolved {
		if err := t.TransitionTo(vo.StatusOpen); err == nil {
			if err := uc.ticketRepo.Update(ctx, t); err != nil {
				uc.logger.Warnw("failed to reopen ticket on reply", "error", err, "ticket_id", t.ID())
			}
		}
	}

	if cmd.IsAdmin {
		uc.notifyOwner(t)
	}

	return comment, nil
}

func (uc *AddCommentUseCase) notifyOwner(t *ticket.Ticket) {
	goroutine.SafeGo(uc.logger, "ticket.reply.notify", func() {
		ctx := context.Background()

		owner, err := uc.userRepo.GetByID(ctx, t.UserID())
		if err != nil {
			uc.logger.Warnw("failed to load ticket owner", "error", err, "ticket_id", t.ID())
			return
		}

		if uc.mailer != nil {
			if err := uc.mailer.SendTicketReply(owner.Email(), t.TicketNumber(), t.Title()); err != nil {
				uc.logger.Warnw("failed to send ticket reply email", "error", err, "ticket_id", t.ID())
			}
		}

		n, err := notification.NewNotification(
			owner.ID(),
			t.HotelID(),
			notification.TypeTicketReply,
			fmt.Sprintf("Reply on ticket %s", t.TicketNumber()),
			fmt.Sprintf("Support replied to %q.", t.Title()),
		)
		if err != nil {
			return
		}
		n.SetData("ticket_number", t.TicketNumber())
		if err := uc.notifRepo.Save(ctx, n); err != nil {
			uc.logger.Warnw("failed to save reply notification", "error", err, "ticket_id", t.ID())
		}
	})
}
